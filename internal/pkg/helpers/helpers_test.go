package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page coerced", 0, 10, 0, 10},
		{"negative page coerced", -2, 10, 0, 10},
		{"zero size gets default", 2, 0, 10, DefaultPageSize},
		{"oversized capped", 1, 500, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&page_size=25", 3, 25},
		{"invalid page", "page=abc&page_size=5", 1, 5},
		{"negative size", "page=2&page_size=-1", 2, DefaultPageSize},
		{"oversized", "page=1&page_size=1000", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("got (%d, %d), want (%d, %d)", page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestOrderDirection(t *testing.T) {
	if got := OrderDirection("asc"); got != "ASC" {
		t.Errorf("asc -> %q", got)
	}
	if got := OrderDirection("desc"); got != "DESC" {
		t.Errorf("desc -> %q", got)
	}
	if got := OrderDirection("; DROP TABLE tag"); got != "DESC" {
		t.Errorf("arbitrary input must coerce to DESC, got %q", got)
	}
}

func TestAllowedSortField(t *testing.T) {
	allowed := []string{"id", "name", "created_at"}

	if got := AllowedSortField("name", allowed, "id"); got != "name" {
		t.Errorf("allowed field rejected: %q", got)
	}
	if got := AllowedSortField("password", allowed, "id"); got != "id" {
		t.Errorf("unknown field must fall back, got %q", got)
	}
	if got := AllowedSortField("", allowed, "created_at"); got != "created_at" {
		t.Errorf("empty field must fall back, got %q", got)
	}
}

func TestGetContentNullString(t *testing.T) {
	if ns := GetContentNullString(""); ns.Valid {
		t.Error("empty string must be NULL")
	}
	if ns := GetContentNullString("Math"); !ns.Valid || ns.String != "Math" {
		t.Errorf("unexpected null string: %+v", ns)
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("30m", time.Hour); d != 30*time.Minute {
		t.Errorf("got %v", d)
	}
	if d := ParseDuration("not-a-duration", time.Hour); d != time.Hour {
		t.Errorf("invalid input must use default, got %v", d)
	}
}
