package controller

import (
	"errors"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto status codes. Anything unrecognised
// is logged and reported as a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidExamType), errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidQuestionID),
		errors.Is(err, util.ErrInvalidChoice),
		errors.Is(err, util.ErrConfirmationRequired):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
