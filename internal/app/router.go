package app

import (
	"exam_quiz_backend/docs"
	"exam_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/progress", c.progress.GetProgress)
		api.POST("/progress", c.progress.RecordAnswer)
		api.DELETE("/progress", c.progress.ClearAll)

		api.GET("/stats", c.stats.GetStats)

		api.GET("/badges", c.badge.ListBadges)
		api.GET("/badges/stats", c.badge.GetBadgeStats)

		api.GET("/preferences/last-exam-type", c.preference.GetLastExamType)
		api.PUT("/preferences/last-exam-type", c.preference.SetLastExamType)
	}

	exams := api.Group("/exams")
	{
		exams.GET("", c.exam.ListExams)
		exams.GET("/:examType/quiz", c.exam.GetQuiz)
		exams.POST("/:examType/questions/:questionId/answer", c.exam.SubmitAnswer)
		exams.GET("/:examType/stats", c.exam.GetExamStats)
	}
}
