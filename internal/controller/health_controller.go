package controller

import (
	"context"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/util"
	"exam_quiz_backend/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthController struct {
	Store repository.Store
}

func NewHealthController(store repository.Store) *HealthController {
	return &HealthController{Store: store}
}

// @Summary Health check
// @Description Reports whether the progress store is reachable
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.Store.Ping(pingCtx); err != nil {
		logger.Log.Warn("Health check failed", zap.String("backend", c.Store.Backend()), zap.Error(err))
		// reads and writes still degrade to empty results, so report but stay useful
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Progress store unavailable",
			Data: gin.H{
				"status":  "degraded",
				"backend": c.Store.Backend(),
			},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status":  "ok",
		"backend": c.Store.Backend(),
	})
}
