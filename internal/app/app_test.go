package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Server.Mode = gin.TestMode
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLite.Path = ":memory:"
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Geocoder.BaseURL = "http://localhost:9999"
	cfg.Upload.Dir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("nil config accepted")
	}
}

func TestNew_DebugModeServesLogin(t *testing.T) {
	cfg := testConfig(t)
	// Debug mode migrates the schema and seeds a staff login.
	cfg.Server.Mode = gin.DebugMode

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	body := strings.NewReader(`{"email":"admin@luggio.local","password":"luggio-dev"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("no token in login response")
	}

	// The issued token opens the protected API.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	w = httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("hotels status = %d, body %s", w.Code, w.Body.String())
	}

	// And without one the same route is out of reach.
	w = httptest.NewRecorder()
	a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", w.Code)
	}
}
