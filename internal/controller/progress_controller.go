package controller

import (
	"errors"
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Get question progress
// @Description Without questionId, returns every record keyed by question id. With it, returns that record or null.
// @Tags progress
// @Produce json
// @Param questionId query int false "Question ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	if raw, ok := ctx.GetQuery("questionId"); ok {
		id, valid := util.ParsePositiveInt(raw)
		if !valid {
			util.BadRequest(ctx, util.ErrInvalidQuestionID.Error())
			return
		}

		progress, err := c.ProgressService.GetProgress(ctx.Request.Context(), id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, progress)
		return
	}

	all, err := c.ProgressService.GetAllProgress(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, all)
}

// @Summary Record an answer
// @Description Applies one answer event: question counters, daily snapshot, activity ledger and badges
// @Tags progress
// @Accept json
// @Produce json
// @Param body body service.AnswerEvent true "Answer event"
// @Success 200 {object} util.Response{data=service.AnswerResult}
// @Failure 400 {object} util.Response
// @Router /progress [post]
func (c *ProgressController) RecordAnswer(ctx *gin.Context) {
	var req service.AnswerEvent
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "questionId and examType are required")
		return
	}

	result, err := c.ProgressService.RecordAnswer(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidExamType) {
			util.BadRequest(ctx, "examType is required")
			return
		}
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Clear all progress
// @Description Deletes progress, daily stats and activity. Earned badges are kept. Requires confirm=true.
// @Tags progress
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /progress [delete]
func (c *ProgressController) ClearAll(ctx *gin.Context) {
	if ctx.Query("confirm") != "true" {
		respondError(ctx, util.ErrConfirmationRequired)
		return
	}

	if err := c.ProgressService.ClearAll(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
