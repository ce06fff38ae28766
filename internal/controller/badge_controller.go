package controller

import (
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	ProgressService *service.ProgressService
}

func NewBadgeController(progressService *service.ProgressService) *BadgeController {
	return &BadgeController{ProgressService: progressService}
}

// @Summary List badges
// @Description The full catalog with the earned flag and achievedDate
// @Tags badges
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	badges, err := c.ProgressService.AllBadges(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// @Summary Badge statistics
// @Description Current values for every badge type
// @Tags badges
// @Produce json
// @Success 200 {object} util.Response{data=model.BadgeStats}
// @Router /badges/stats [get]
func (c *BadgeController) GetBadgeStats(ctx *gin.Context) {
	stats, err := c.ProgressService.BadgeStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
