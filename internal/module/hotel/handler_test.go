package hotel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
)

// mockService implements domain.HotelService for handler testing.
type mockService struct {
	createRes *domain.Hotel
	createErr error
	getRes    *domain.Hotel
	getErr    error
	listRes   *domain.PageResult[domain.Hotel]
	listErr   error
	listReq   domain.PageRequest
	deleteErr error
}

func (m *mockService) Create(_ context.Context, _ domain.HotelDraft) (*domain.Hotel, error) {
	return m.createRes, m.createErr
}

func (m *mockService) Get(_ context.Context, _ uint) (*domain.Hotel, error) {
	return m.getRes, m.getErr
}

func (m *mockService) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hotel], error) {
	m.listReq = req
	return m.listRes, m.listErr
}

func (m *mockService) Update(_ context.Context, _ uint, _ domain.HotelDraft) (*domain.Hotel, error) {
	return m.createRes, m.createErr
}

func (m *mockService) Delete(_ context.Context, _ uint) error {
	return m.deleteErr
}

func setupRouter(svc domain.HotelService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler(svc)).RegisterRoutes(api)
	return r
}

func TestHandler_List(t *testing.T) {
	svc := &mockService{
		listRes: &domain.PageResult[domain.Hotel]{
			Items: []domain.Hotel{{KrName: "신라호텔"}},
			Pagination: domain.PageMeta{
				Page: 2, TotalPages: 5, Total: 42,
			},
		},
	}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels?page=2&limit=9&search=shilla&active=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if svc.listReq.Page != 2 || svc.listReq.Limit != 9 || svc.listReq.Search != "shilla" {
		t.Errorf("parsed request = %+v", svc.listReq)
	}
	if svc.listReq.Filter["active"] != "true" {
		t.Errorf("filter = %v", svc.listReq.Filter)
	}

	var resp struct {
		Data struct {
			Items      []domain.Hotel  `json:"items"`
			Pagination domain.PageMeta `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Pagination.TotalPages != 5 || resp.Data.Pagination.Total != 42 {
		t.Errorf("pagination = %+v", resp.Data.Pagination)
	}
}

func TestHandler_Create(t *testing.T) {
	svc := &mockService{
		createRes: &domain.Hotel{
			BaseModel: domain.BaseModel{ID: 7},
			KrName:    "신라호텔",
			Address:   "249 Dongho-ro",
		},
	}
	r := setupRouter(svc)

	body := `{"kr_name":"신라호텔","address":"249 Dongho-ro","lat":37.556,"lng":127.005,"active":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	svc := &mockService{getErr: domain.ErrNotFound}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestHandler_InvalidID(t *testing.T) {
	r := setupRouter(&mockService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/hotels/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
