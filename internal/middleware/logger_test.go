package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// recordHandler captures emitted records so tests can assert on level
// and attributes.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) last(t *testing.T) slog.Record {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.records) == 0 {
		t.Fatal("no log records captured")
	}
	return h.records[len(h.records)-1]
}

func recordAttr(r slog.Record, key string) (slog.Value, bool) {
	var val slog.Value
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			val = a.Value
			found = true
			return false
		}
		return true
	})
	return val, found
}

func newLoggerRouter(h *recordHandler, register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(slog.New(h)))
	register(r)
	return r
}

func TestLogger_RecordsRequestFields(t *testing.T) {
	h := &recordHandler{}
	r := newLoggerRouter(h, func(r *gin.Engine) {
		r.GET("/api/v1/orders", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?page=2&status=matched", nil)
	r.ServeHTTP(w, req)

	rec := h.last(t)
	if rec.Level != slog.LevelInfo {
		t.Errorf("level = %v, want info", rec.Level)
	}
	if v, ok := recordAttr(rec, "method"); !ok || v.String() != http.MethodGet {
		t.Errorf("method attr = %v", v)
	}
	if v, ok := recordAttr(rec, "path"); !ok || v.String() != "/api/v1/orders" {
		t.Errorf("path attr = %v", v)
	}
	if v, ok := recordAttr(rec, "status"); !ok || v.Int64() != http.StatusOK {
		t.Errorf("status attr = %v", v)
	}
	if v, ok := recordAttr(rec, "query"); !ok || v.String() != "page=2&status=matched" {
		t.Errorf("query attr = %v, want page=2&status=matched", v)
	}
}

func TestLogger_OmitsEmptyQuery(t *testing.T) {
	h := &recordHandler{}
	r := newLoggerRouter(h, func(r *gin.Engine) {
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if _, ok := recordAttr(h.last(t), "query"); ok {
		t.Error("query attr present for request without query string")
	}
}

func TestLogger_IncludesStaffID(t *testing.T) {
	h := &recordHandler{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(slog.New(h)))
	// Simulate the auth middleware running inside the route group, after
	// Logger in the chain.
	r.GET("/api/v1/hotels", func(c *gin.Context) {
		c.Set(StaffIDContextKey, uint(42))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil))

	v, ok := recordAttr(h.last(t), "staff_id")
	if !ok {
		t.Fatal("staff_id attr missing")
	}
	if v.Uint64() != 42 {
		t.Errorf("staff_id = %d, want 42", v.Uint64())
	}
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   slog.Level
	}{
		{"ok", http.StatusOK, slog.LevelInfo},
		{"redirect", http.StatusFound, slog.LevelInfo},
		{"client error", http.StatusNotFound, slog.LevelWarn},
		{"server error", http.StatusBadGateway, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordHandler{}
			r := newLoggerRouter(h, func(r *gin.Engine) {
				r.GET("/t", func(c *gin.Context) { c.Status(tt.status) })
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

			if rec := h.last(t); rec.Level != tt.want {
				t.Errorf("level = %v, want %v", rec.Level, tt.want)
			}
		})
	}
}

func TestLogger_NilLoggerDoesNotPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(nil))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
