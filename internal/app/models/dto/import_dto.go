package dto

// ImportRequest is the structured bulk import body: source questions with
// their derived standard questions, version trees and reference answers.
type ImportRequest []ImportSrcQuestion

// ImportSrcQuestion is one source question in an import body.
type ImportSrcQuestion struct {
	Content      string              `json:"content"`
	StdQuestions []ImportStdQuestion `json:"std_questions"`
	Answers      []string            `json:"answers"`
}

// ImportStdQuestion is one derived standard question in an import body.
type ImportStdQuestion struct {
	Versions []ImportStdQuestionVersion `json:"versions"`
}

// ImportStdQuestionVersion is one question version in an import body.
type ImportStdQuestionVersion struct {
	Version  string          `json:"version"`
	Content  string          `json:"content"`
	Category string          `json:"category"`
	Tags     []string        `json:"tags"`
	Answer   ImportStdAnswer `json:"answer"`
}

// ImportStdAnswer is the standard answer attached to an imported version.
type ImportStdAnswer struct {
	Content       string                `json:"content"`
	ScoringPoints []ScoringPointRequest `json:"scoring_points"`
}

// ImportResponse mirrors the original import endpoint's envelope.
type ImportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
