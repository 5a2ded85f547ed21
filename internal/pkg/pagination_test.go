package pkg

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(queryParams url.Values) *gin.Context {
	req := httptest.NewRequest(http.MethodGet, "/?"+queryParams.Encode(), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestParsePageRequest_Defaults(t *testing.T) {
	c := newTestContext(url.Values{})
	pr := ParsePageRequest(c)

	if pr.Page != 1 {
		t.Errorf("expected Page=1, got %d", pr.Page)
	}
	if pr.Limit != 9 {
		t.Errorf("expected Limit=9, got %d", pr.Limit)
	}
	if pr.Search != "" {
		t.Errorf("expected empty Search, got %q", pr.Search)
	}
	if len(pr.Filter) != 0 {
		t.Errorf("expected empty Filter, got %v", pr.Filter)
	}
}

func TestParsePageRequest_CustomValues(t *testing.T) {
	c := newTestContext(url.Values{
		"page":   {"3"},
		"limit":  {"5"},
		"search": {"  Shilla "},
		"status": {"active"},
		"month":  {"2026-08"},
	})
	pr := ParsePageRequest(c)

	if pr.Page != 3 {
		t.Errorf("expected Page=3, got %d", pr.Page)
	}
	if pr.Limit != 5 {
		t.Errorf("expected Limit=5, got %d", pr.Limit)
	}
	if pr.Search != "Shilla" {
		t.Errorf("expected trimmed Search=Shilla, got %q", pr.Search)
	}
	if pr.Filter["status"] != "active" {
		t.Errorf("expected Filter[status]=active, got %s", pr.Filter["status"])
	}
	if pr.Filter["month"] != "2026-08" {
		t.Errorf("expected Filter[month]=2026-08, got %s", pr.Filter["month"])
	}
}

func TestParsePageRequest_Clamping(t *testing.T) {
	t.Run("page below minimum", func(t *testing.T) {
		c := newTestContext(url.Values{"page": {"0"}})
		if pr := ParsePageRequest(c); pr.Page != 1 {
			t.Errorf("expected Page=1, got %d", pr.Page)
		}
	})

	t.Run("negative page", func(t *testing.T) {
		c := newTestContext(url.Values{"page": {"-5"}})
		if pr := ParsePageRequest(c); pr.Page != 1 {
			t.Errorf("expected Page=1, got %d", pr.Page)
		}
	})

	t.Run("limit above maximum", func(t *testing.T) {
		c := newTestContext(url.Values{"limit": {"500"}})
		if pr := ParsePageRequest(c); pr.Limit != 100 {
			t.Errorf("expected Limit=100, got %d", pr.Limit)
		}
	})

	t.Run("invalid limit defaults", func(t *testing.T) {
		c := newTestContext(url.Values{"limit": {"abc"}})
		if pr := ParsePageRequest(c); pr.Limit != 9 {
			t.Errorf("expected Limit=9, got %d", pr.Limit)
		}
	})
}

func TestParsePageRequest_EmptyFilterValuesIgnored(t *testing.T) {
	c := newTestContext(url.Values{
		"status": {""},
		"month":  {"2026-01"},
	})
	pr := ParsePageRequest(c)

	if _, ok := pr.Filter["status"]; ok {
		t.Error("expected empty filter value to be excluded")
	}
	if pr.Filter["month"] != "2026-01" {
		t.Errorf("expected Filter[month]=2026-01, got %s", pr.Filter["month"])
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"exact division", []string{"a", "b", "c"}, 27, 1, 9, 3},
		{"remainder rounds up", []string{"a"}, 10, 2, 9, 2},
		{"empty result", nil, 0, 1, 9, 0},
		{"single page", []string{"a", "b"}, 2, 1, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PageRequest{Page: tt.page, Limit: tt.limit}
			result := NewPageResult(tt.items, tt.total, req)

			if result.Pagination.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d; want %d", result.Pagination.TotalPages, tt.wantPages)
			}
			if result.Pagination.Page != tt.page {
				t.Errorf("Page = %d; want %d", result.Pagination.Page, tt.page)
			}
			if result.Pagination.Total != tt.total {
				t.Errorf("Total = %d; want %d", result.Pagination.Total, tt.total)
			}
			if result.Items == nil {
				t.Error("Items must never be nil")
			}
		})
	}
}
