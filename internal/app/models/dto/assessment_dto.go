package dto

import "github.com/canyuksel/llmassess/internal/app/models"

// AssessmentListQuery carries the parsed parameters of the assessment list
// endpoint.
type AssessmentListQuery struct {
	Page      int
	PageSize  int
	SortOrder string // asc|desc on assessment id
}

// AssessmentListResponse is the assessment list payload.
type AssessmentListResponse struct {
	Total       int64               `json:"total"`
	Assessments []models.Assessment `json:"assessments"`
}

// CreateAssessmentRequest is the body for recording an assessment run.
type CreateAssessmentRequest struct {
	DatasetVersionID int64                `json:"dataset_version_id"`
	Model            string               `json:"model"`
	ModelAnswers     []ModelAnswerRequest `json:"model_answers"`
}

// ModelAnswerRequest is one model answer inside an assessment body.
type ModelAnswerRequest struct {
	Content              string                `json:"content"`
	StdQuestionVersionID int64                 `json:"std_question_version_id"`
	ScoreProcesses       []ScoreProcessRequest `json:"score_processes"`
}

// ScoreProcessRequest is one scoring audit step. Optional fields default to
// empty string / zero when stored.
type ScoreProcessRequest struct {
	Type                 string   `json:"type"`
	Description          string   `json:"description"`
	Score                *float64 `json:"score"`
	ScoringPointContent  string   `json:"scoring_point_content"`
	ScoringPointMaxScore *float64 `json:"scoring_point_max_score"`
}

// CreateAssessmentResponse returns the new assessment id.
type CreateAssessmentResponse struct {
	AssessmentID int64 `json:"assessment_id"`
}
