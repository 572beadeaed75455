package models

import "time"

// SrcQuestion is a raw, unprocessed input question together with the
// curated standard questions derived from it and any free-text reference
// answers collected alongside it.
type SrcQuestion struct {
	ID           int64         `json:"id"`
	Content      string        `json:"content"`
	StdQuestions []StdQuestion `json:"stdQuestions"`
	Answers      []SrcAnswer   `json:"answers"`
}

// SrcAnswer is a free-text reference answer attached to a source question.
type SrcAnswer struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// StdQuestion is a curated question. Its wording lives entirely in its
// versions; the row itself only ties the versions to a source question.
type StdQuestion struct {
	ID       int64                `json:"id"`
	Versions []StdQuestionVersion `json:"versions"`
}

// StdQuestionVersion is one immutable snapshot of a standard question's
// wording, category and tags. Only the linked answer may change after
// creation.
type StdQuestionVersion struct {
	ID            int64      `json:"id"`
	Version       string     `json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	Content       string     `json:"content"`
	Category      *string    `json:"category,omitempty"`
	Tags          []string   `json:"tags"`
	Answer        *StdAnswer `json:"answer,omitempty"`
	StdQuestionID int64      `json:"stdQuestionId"`
}

// StdAnswer is the single human-authored answer for a question version.
// Updating it replaces the scoring point set wholesale.
type StdAnswer struct {
	ID            int64          `json:"id"`
	Content       string         `json:"content"`
	ScoringPoints []ScoringPoint `json:"scoringPoints"`
}

// ScoringPoint is one atomic, separately-scored criterion within a
// standard answer.
type ScoringPoint struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// CandidateAnswer is a human-submitted answer to a question version.
// Candidate answers are append-only.
type CandidateAnswer struct {
	ID          int64              `json:"id"`
	StdQuestion QuestionVersionRef `json:"std_question"`
	Content     string             `json:"content"`
	Author      string             `json:"author"`
}

// QuestionVersionRef is the shallow question-version reference embedded in
// candidate answer listings.
type QuestionVersionRef struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
