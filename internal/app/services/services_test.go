package services

import (
	"context"
	"errors"
	"testing"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/pkg/apperrors"
)

// Validation runs before any repository call, so a nil repository is fine
// for these paths.

func TestSetStandardAnswerValidation(t *testing.T) {
	svc := NewStdQuestionService(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.SetStandardAnswerRequest
	}{
		{"missing version id", dto.SetStandardAnswerRequest{Answer: "a"}},
		{"missing answer", dto.SetStandardAnswerRequest{StdQuestionVersionID: 1}},
		{
			"blank scoring point",
			dto.SetStandardAnswerRequest{
				StdQuestionVersionID: 1,
				Answer:               "a",
				ScoringPoints:        []dto.ScoringPointRequest{{Content: "  ", Score: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetStandardAnswer(ctx, tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateCandidateAnswerValidation(t *testing.T) {
	svc := NewCandidateAnswerService(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateCandidateAnswerRequest
	}{
		{"missing version id", dto.CreateCandidateAnswerRequest{Answer: "a", Username: "u"}},
		{"missing answer", dto.CreateCandidateAnswerRequest{StdQuestionVersionID: 1, Username: "u"}},
		{"missing username", dto.CreateCandidateAnswerRequest{StdQuestionVersionID: 1, Answer: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDatasetValidation(t *testing.T) {
	svc := NewDatasetService(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateDatasetRequest
	}{
		{"missing name", dto.CreateDatasetRequest{VersionName: "v1", StdQuestions: []int64{1}}},
		{"missing version", dto.CreateDatasetRequest{DatasetName: "d", StdQuestions: []int64{1}}},
		{"no questions", dto.CreateDatasetRequest{DatasetName: "d", VersionName: "v1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateAssessmentValidation(t *testing.T) {
	svc := NewAssessmentService(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateAssessmentRequest
	}{
		{"missing model", dto.CreateAssessmentRequest{DatasetVersionID: 1}},
		{"missing dataset version", dto.CreateAssessmentRequest{Model: "m"}},
		{
			"answer without question version",
			dto.CreateAssessmentRequest{
				Model:            "m",
				DatasetVersionID: 1,
				ModelAnswers:     []dto.ModelAnswerRequest{{Content: "x"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestImportValidation(t *testing.T) {
	svc := NewImportService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.ImportRequest
	}{
		{"empty body", dto.ImportRequest{}},
		{"blank source content", dto.ImportRequest{{Content: ""}}},
		{
			"blank version content",
			dto.ImportRequest{{
				Content: "src",
				StdQuestions: []dto.ImportStdQuestion{{
					Versions: []dto.ImportStdQuestionVersion{{Version: "v1"}},
				}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Import(ctx, tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
