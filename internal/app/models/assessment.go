package models

import "time"

// Assessment is one evaluation run of a model against a dataset version.
type Assessment struct {
	ID               int64         `json:"id"`
	Model            string        `json:"model"`
	TotalScore       float64       `json:"totalScore"`
	DatasetVersionID int64         `json:"datasetVersionId"`
	CreatedAt        time.Time     `json:"createdAt"`
	Dataset          *Dataset      `json:"dataset,omitempty"`
	ModelAnswers     []ModelAnswer `json:"modelAnswers"`
}

// ModelAnswer is one model-generated answer to one question version within
// an assessment.
type ModelAnswer struct {
	ID                   int64               `json:"id"`
	Content              string              `json:"content"`
	TotalScore           float64             `json:"totalScore"`
	StdQuestionVersionID int64               `json:"stdQuestionVersionId"`
	AssessmentID         int64               `json:"assessmentId"`
	QuestionVersion      *StdQuestionVersion `json:"questionVersion,omitempty"`
	ScoreProcesses       []ScoreProcess      `json:"scoreProcesses"`
}

// ScoreProcess is an append-only audit record of one scoring step.
type ScoreProcess struct {
	ID                   int64   `json:"id"`
	Type                 string  `json:"type"`
	Description          string  `json:"description"`
	Score                float64 `json:"score"`
	ScoringPointContent  string  `json:"scoringPointContent"`
	ScoringPointMaxScore float64 `json:"scoringPointMaxScore"`
	ModelAnswerID        int64   `json:"modelAnswerId"`
}
