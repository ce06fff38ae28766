package controller

import (
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	statsHistory  = "history"
	statsActivity = "activity"
	statsToday    = "today"
)

type StatsController struct {
	ProgressService *service.ProgressService
}

func NewStatsController(progressService *service.ProgressService) *StatsController {
	return &StatsController{ProgressService: progressService}
}

// @Summary Statistics
// @Description history: daily snapshots ascending. activity: per-exam ledger descending. today: today's ledger entry for examType, zero-valued when absent.
// @Tags stats
// @Produce json
// @Param type query string false "history, activity or today" default(history)
// @Param examType query string false "Exam type (required for today)"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	examType := ctx.Query("examType")

	switch ctx.DefaultQuery("type", statsHistory) {
	case statsHistory:
		history, err := c.ProgressService.StatsHistory(ctx.Request.Context())
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, history)
	case statsActivity:
		activity, err := c.ProgressService.ActivityHistory(ctx.Request.Context(), examType)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, activity)
	case statsToday:
		if examType == "" {
			util.BadRequest(ctx, "examType is required")
			return
		}
		today, err := c.ProgressService.TodayActivity(ctx.Request.Context(), examType)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, today)
	default:
		util.BadRequest(ctx, "type must be one of history, activity, today")
	}
}
