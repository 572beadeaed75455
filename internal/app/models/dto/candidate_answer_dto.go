package dto

import "github.com/canyuksel/llmassess/internal/app/models"

// CandidateAnswerListQuery carries the parsed parameters of the candidate
// answer list endpoint. StdQuestion filters on the answered question
// version's content, not on an id.
type CandidateAnswerListQuery struct {
	ID                  *int64
	StdQuestion         string
	Author              string
	Content             string
	OnlyShowNoStdAnswer bool
	SortField           string
	SortBy              string
	Page                int
	PageSize            int
}

// CandidateAnswerListResponse is the candidate answer list payload.
type CandidateAnswerListResponse struct {
	Total            int64                    `json:"total"`
	CandidateAnswers []models.CandidateAnswer `json:"candidate_answers"`
}

// CreateCandidateAnswerRequest is the body for submitting a candidate answer.
type CreateCandidateAnswerRequest struct {
	StdQuestionVersionID int64  `json:"std_question_version_id"`
	Answer               string `json:"answer"`
	Username             string `json:"username"`
}

// CreateCandidateAnswerResponse returns the new candidate answer id.
type CreateCandidateAnswerResponse struct {
	ID int64 `json:"id"`
}
