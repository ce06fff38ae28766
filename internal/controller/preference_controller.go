package controller

import (
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	PreferenceService *service.PreferenceService
}

func NewPreferenceController(preferenceService *service.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: preferenceService}
}

type lastExamTypeRequest struct {
	ExamType string `json:"examType" binding:"required"`
}

// @Summary Get the last selected exam
// @Tags preferences
// @Produce json
// @Success 200 {object} util.Response
// @Router /preferences/last-exam-type [get]
func (c *PreferenceController) GetLastExamType(ctx *gin.Context) {
	examType, err := c.PreferenceService.LastExamType(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"examType": examType})
}

// @Summary Set the last selected exam
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body lastExamTypeRequest true "Exam type"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /preferences/last-exam-type [put]
func (c *PreferenceController) SetLastExamType(ctx *gin.Context) {
	var req lastExamTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "examType is required")
		return
	}

	if err := c.PreferenceService.SetLastExamType(ctx.Request.Context(), req.ExamType); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"examType": req.ExamType})
}
