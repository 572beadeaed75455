package repositories

import (
	"strings"
	"testing"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
)

func TestBuildDatasetFilter(t *testing.T) {
	id := int64(12)

	tests := []struct {
		name    string
		query   dto.DatasetListQuery
		wantSQL string
	}{
		{"id", dto.DatasetListQuery{ID: &id}, "d.id ="},
		{"name", dto.DatasetListQuery{Name: "eval"}, "d.name ILIKE"},
		{"version", dto.DatasetListQuery{Version: "v2"}, "dv.name ILIKE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := buildDatasetFilter(tt.query).ToSql()
			if err != nil {
				t.Fatalf("ToSql failed: %v", err)
			}
			if !strings.Contains(sql, tt.wantSQL) {
				t.Errorf("sql %q missing %q", sql, tt.wantSQL)
			}
		})
	}

	if cond := buildDatasetFilter(dto.DatasetListQuery{}); len(cond) != 0 {
		t.Errorf("empty query must add no conditions, got %d", len(cond))
	}
}
