package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/canyuksel/llmassess/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	stdQuestionController *controllers.StdQuestionController,
	srcQuestionController *controllers.SrcQuestionController,
	candidateAnswerController *controllers.CandidateAnswerController,
	datasetController *controllers.DatasetController,
	assessmentController *controllers.AssessmentController,
	taxonomyController *controllers.TaxonomyController,
	dataController *controllers.DataController,
) {
	v1 := router.Group("/api/v1")

	// Standard questions and their reference answers
	v1.GET("/std-question", stdQuestionController.List)
	v1.POST("/standard-answer", stdQuestionController.SetStandardAnswer)

	// Source questions
	v1.GET("/src-question", srcQuestionController.List)

	// Candidate answers
	candidateAnswers := v1.Group("/candidate-answer")
	{
		candidateAnswers.GET("", candidateAnswerController.List)
		candidateAnswers.POST("", candidateAnswerController.Create)
	}

	// Dataset version snapshots
	datasets := v1.Group("/dataset")
	{
		datasets.GET("", datasetController.List)
		datasets.POST("", datasetController.Create)
	}

	// Assessment runs
	assessments := v1.Group("/assessment")
	{
		assessments.GET("", assessmentController.List)
		assessments.POST("", assessmentController.Create)
	}

	// Taxonomy
	v1.GET("/tag", taxonomyController.SearchTags)
	v1.GET("/category", taxonomyController.ListCategories)

	// Bulk import / full export
	data := v1.Group("/data")
	{
		data.GET("", dataController.Dump)
		data.POST("", dataController.Import)
	}
}
