package repositories

import (
	"strings"
	"testing"

	"github.com/canyuksel/llmassess/internal/app/models/dto"
)

func filterSQL(t *testing.T, q dto.StdQuestionListQuery) (string, []interface{}) {
	t.Helper()
	sql, args, err := buildStdQuestionFilter(q).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	return sql, args
}

func TestBuildStdQuestionFilterEmpty(t *testing.T) {
	cond := buildStdQuestionFilter(dto.StdQuestionListQuery{})
	if len(cond) != 0 {
		t.Errorf("expected no conditions, got %d", len(cond))
	}
}

func TestBuildStdQuestionFilterFields(t *testing.T) {
	id := int64(7)

	tests := []struct {
		name     string
		query    dto.StdQuestionListQuery
		wantSQL  []string
		wantArgs int
	}{
		{
			name:     "id",
			query:    dto.StdQuestionListQuery{ID: &id},
			wantSQL:  []string{"sq.id ="},
			wantArgs: 1,
		},
		{
			name:     "content substring",
			query:    dto.StdQuestionListQuery{Content: "grav"},
			wantSQL:  []string{"sqv.content ILIKE"},
			wantArgs: 1,
		},
		{
			name:     "category exact",
			query:    dto.StdQuestionListQuery{Category: "Math"},
			wantSQL:  []string{"sqv.category ="},
			wantArgs: 1,
		},
		{
			name:     "answer without flags",
			query:    dto.StdQuestionListQuery{Answer: "speed"},
			wantSQL:  []string{"sa.content ILIKE"},
			wantArgs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := filterSQL(t, tt.query)
			for _, fragment := range tt.wantSQL {
				if !strings.Contains(sql, fragment) {
					t.Errorf("sql %q missing %q", sql, fragment)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("expected %d args, got %d: %v", tt.wantArgs, len(args), args)
			}
		})
	}
}

func TestBuildStdQuestionFilterTagsRequireAll(t *testing.T) {
	sql, args := filterSQL(t, dto.StdQuestionListQuery{Tags: []string{"a", "b"}})

	if !strings.Contains(sql, "HAVING COUNT(DISTINCT t.tag)") {
		t.Errorf("tag filter must require all tags, got %q", sql)
	}
	if len(args) != 2 {
		t.Fatalf("expected tag list and count args, got %v", args)
	}
	if count, ok := args[1].(int); !ok || count != 2 {
		t.Errorf("expected tag count arg 2, got %v", args[1])
	}
}

func TestBuildStdQuestionFilterAnsweredPrecedence(t *testing.T) {
	// When both flags are set, answered wins.
	sql, _ := filterSQL(t, dto.StdQuestionListQuery{
		OnlyShowAnswered:   true,
		OnlyShowNoAnswered: true,
	})

	if !strings.Contains(sql, "sa.id IS NOT NULL") {
		t.Errorf("expected answered condition, got %q", sql)
	}
	if strings.Contains(sql, "sa.id IS NULL") {
		t.Errorf("unanswered condition must not apply when answered is set: %q", sql)
	}
}

func TestBuildStdQuestionFilterUnanswered(t *testing.T) {
	sql, _ := filterSQL(t, dto.StdQuestionListQuery{OnlyShowNoAnswered: true})

	if !strings.Contains(sql, "sa.id IS NULL OR sa.content IS NULL") {
		t.Errorf("expected blank-answer condition, got %q", sql)
	}
}

func TestBuildStdQuestionFilterAnswerInsideAnsweredFlag(t *testing.T) {
	sql, args := filterSQL(t, dto.StdQuestionListQuery{
		OnlyShowAnswered: true,
		Answer:           "velocity",
	})

	if !strings.Contains(sql, "sa.content ILIKE") {
		t.Errorf("answer substring must still apply with answered flag: %q", sql)
	}
	found := false
	for _, a := range args {
		if s, ok := a.(string); ok && s == "%velocity%" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %%velocity%% argument, got %v", args)
	}
}
