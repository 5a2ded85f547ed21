package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/listview"
	"github.com/luggio/console/internal/workflow"
)

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    status,
		"message": http.StatusText(status),
		"data":    data,
	})
}

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "ops@luggio.io" {
				t.Errorf("email = %q", body["email"])
			}
			writeEnvelope(w, http.StatusOK, map[string]string{"token": "tok-123"})
		case "/api/v1/hotels":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("Authorization = %q", got)
			}
			writeEnvelope(w, http.StatusOK, domain.PageResult[domain.Hotel]{
				Items:      []domain.Hotel{},
				Pagination: domain.PageMeta{Page: 1, TotalPages: 0, Total: 0},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Login(context.Background(), "ops@luggio.io", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := FetchPage[domain.Hotel](context.Background(), c, PathHotels, listview.Query{Page: 1, Limit: 9}); err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
}

func TestFetchPage_QueryParamsAndDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "9" {
			t.Errorf("page/limit = %q/%q", q.Get("page"), q.Get("limit"))
		}
		if q.Get("search") != "shilla" {
			t.Errorf("search = %q", q.Get("search"))
		}
		if q.Get("status") != "REQ" {
			t.Errorf("status = %q", q.Get("status"))
		}
		writeEnvelope(w, http.StatusOK, domain.PageResult[domain.Partner]{
			Items:      []domain.Partner{{KrName: "Cafe Onion"}},
			Pagination: domain.PageMeta{Page: 2, TotalPages: 4, Total: 31},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := FetchPage[domain.Partner](context.Background(), c, PathPartners, listview.Query{
		Page:   2,
		Limit:  9,
		Search: "shilla",
		Filter: map[string]string{"status": "REQ"},
	})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.TotalPages != 4 || page.Total != 31 || page.Page != 2 {
		t.Errorf("page meta = %+v", page)
	}
	if len(page.Items) != 1 || page.Items[0].KrName != "Cafe Onion" {
		t.Errorf("items = %+v", page.Items)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/hotels/999":
			writeEnvelope(w, http.StatusNotFound, nil)
		case "/api/v1/hotels/1":
			writeEnvelope(w, http.StatusUnauthorized, nil)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := FetchOne[domain.Hotel](context.Background(), c, PathHotels, 999)
	if !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}

	_, err = FetchOne[domain.Hotel](context.Background(), c, PathHotels, 1)
	if !domain.IsUnauthorized(err) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestClient_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/uploads" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "logo.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"path": "/uploads/ab12.png"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	path, err := c.UploadImage(context.Background(), &workflow.StagedFile{
		Name:    "logo.png",
		Content: strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if path != "/uploads/ab12.png" {
		t.Errorf("path = %q", path)
	}
}

func TestClient_CreateUpdateDelete(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	if err := c.Create(ctx, PathNotices, domain.NoticeDraft{Title: "t", Content: "c"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := c.Update(ctx, PathNotices, 7, domain.NoticeDraft{Title: "t2", Content: "c"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := c.Delete(ctx, PathNotices, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	want := []string{
		"POST /api/v1/notices",
		"PUT /api/v1/notices/7",
		"DELETE /api/v1/notices/7",
	}
	for i := range want {
		if i >= len(seen) || seen[i] != want[i] {
			t.Fatalf("requests = %v, want %v", seen, want)
		}
	}
}

func TestClient_SettlementSummaryAndRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/settlements/summary":
			if got := r.URL.Query().Get("month"); got != "2026-08" {
				t.Errorf("month = %q", got)
			}
			writeEnvelope(w, http.StatusOK, domain.SettlementSummary{
				Month: "2026-08", TotalPayout: 1250000, TotalCount: 14,
			})
		case r.URL.Path == "/api/v1/settlements/3/retry" && r.Method == http.MethodPost:
			var retry domain.SettlementRetry
			json.NewDecoder(r.Body).Decode(&retry)
			if retry.Bank != "Kookmin" {
				t.Errorf("bank = %q", retry.Bank)
			}
			writeEnvelope(w, http.StatusOK, nil)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	sum, err := FetchSettlementSummary(context.Background(), c, "2026-08")
	if err != nil {
		t.Fatalf("FetchSettlementSummary: %v", err)
	}
	if sum.TotalPayout != 1250000 || sum.TotalCount != 14 {
		t.Errorf("summary = %+v", sum)
	}

	if err := c.RetrySettlement(context.Background(), 3, domain.SettlementRetry{
		Bank: "Kookmin", BankAccount: "123-456",
	}); err != nil {
		t.Fatalf("RetrySettlement: %v", err)
	}
}
