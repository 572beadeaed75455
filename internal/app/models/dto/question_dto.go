package dto

import "github.com/canyuksel/llmassess/internal/app/models"

// StdQuestionListQuery carries the parsed filter, sort and pagination
// parameters for the standard question list endpoint.
type StdQuestionListQuery struct {
	ID                 *int64
	Content            string
	Answer             string
	Category           string
	Tags               []string
	OnlyShowAnswered   bool
	OnlyShowNoAnswered bool
	SortBy             string // asc|desc on question id
	Page               int
	PageSize           int
}

// StdQuestionListResponse is the standard question list payload.
type StdQuestionListResponse struct {
	Total         int64                `json:"total"`
	TotalNoFilter int64                `json:"total_no_filter"`
	StdQuestions  []models.StdQuestion `json:"std_questions"`
}

// SetStandardAnswerRequest is the body of the standard answer upsert.
type SetStandardAnswerRequest struct {
	StdQuestionVersionID int64                 `json:"std_question_version_id"`
	Answer               string                `json:"answer"`
	ScoringPoints        []ScoringPointRequest `json:"scoring_points"`
}

// ScoringPointRequest is one scoring point in an upsert or import body.
type ScoringPointRequest struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SrcQuestionListQuery carries the parsed parameters of the source
// question list endpoint.
type SrcQuestionListQuery struct {
	ID         *int64
	Content    string
	OrderField string
	OrderBy    string
	Page       int
	PageSize   int
}

// SrcQuestionListResponse is the source question list payload.
type SrcQuestionListResponse struct {
	Total        int64                `json:"total"`
	SrcQuestions []models.SrcQuestion `json:"src_questions"`
}
