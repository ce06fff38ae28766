package controller

import (
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	QuizService *service.QuizService
}

func NewExamController(quizService *service.QuizService) *ExamController {
	return &ExamController{QuizService: quizService}
}

type examSummary struct {
	model.ExamInfo
	Categories []string `json:"categories"`
}

// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} util.Response
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams := c.QuizService.Exams()
	summaries := make([]examSummary, 0, len(exams))
	for _, exam := range exams {
		categories, _ := c.QuizService.Categories(exam.Type)
		summaries = append(summaries, examSummary{ExamInfo: exam, Categories: categories})
	}
	util.Success(ctx, summaries)
}

// @Summary Start a quiz
// @Description Unmastered questions in random order with shuffled choices. When none remain, exhausted is true and statsPath is set.
// @Tags exams
// @Produce json
// @Param examType path string true "Exam type"
// @Param category query string false "Category or all"
// @Param difficulty query string false "exam, basic or all"
// @Success 200 {object} util.Response{data=service.Quiz}
// @Failure 404 {object} util.Response
// @Router /exams/{examType}/quiz [get]
func (c *ExamController) GetQuiz(ctx *gin.Context) {
	var filter service.QuizFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, "invalid filter")
		return
	}

	quiz, err := c.QuizService.BuildQuiz(ctx.Request.Context(), ctx.Param("examType"), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary Answer a question
// @Description Grades the original choice index (or a timeout, always incorrect) and records the result
// @Tags exams
// @Accept json
// @Produce json
// @Param examType path string true "Exam type"
// @Param questionId path int true "Question ID"
// @Param body body service.AnswerSubmission true "Answer"
// @Success 200 {object} util.Response{data=service.GradedAnswer}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /exams/{examType}/questions/{questionId}/answer [post]
func (c *ExamController) SubmitAnswer(ctx *gin.Context) {
	questionID, ok := util.ParsePositiveInt(ctx.Param("questionId"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidQuestionID.Error())
		return
	}

	var req service.AnswerSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	graded, err := c.QuizService.SubmitAnswer(ctx.Request.Context(), ctx.Param("examType"), questionID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, graded)
}

// @Summary Exam statistics
// @Description Per-category totals joined with stored progress, plus today's activity
// @Tags exams
// @Produce json
// @Param examType path string true "Exam type"
// @Success 200 {object} util.Response{data=service.ExamStats}
// @Failure 404 {object} util.Response
// @Router /exams/{examType}/stats [get]
func (c *ExamController) GetExamStats(ctx *gin.Context) {
	stats, err := c.QuizService.ExamStats(ctx.Request.Context(), ctx.Param("examType"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
