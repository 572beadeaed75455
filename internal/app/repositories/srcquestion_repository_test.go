package repositories

import (
	"strings"
	"testing"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
	"github.com/canyuksel/llmassess/internal/pkg/helpers"
)

func TestBuildSrcQuestionFilter(t *testing.T) {
	id := int64(9)

	sql, args, err := buildSrcQuestionFilter(dto.SrcQuestionListQuery{ID: &id, Content: "orbit"}).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	if !strings.Contains(sql, "id =") || !strings.Contains(sql, "content ILIKE") {
		t.Errorf("unexpected sql: %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}

	if cond := buildSrcQuestionFilter(dto.SrcQuestionListQuery{}); len(cond) != 0 {
		t.Errorf("empty query must add no conditions, got %d", len(cond))
	}
}

func TestSrcQuestionSortFieldAllowList(t *testing.T) {
	if got := helpers.AllowedSortField("content", srcQuestionSortFields, "id"); got != "content" {
		t.Errorf("content should be sortable, got %q", got)
	}
	if got := helpers.AllowedSortField("created_at; --", srcQuestionSortFields, "id"); got != "id" {
		t.Errorf("unknown field must fall back to id, got %q", got)
	}
}
