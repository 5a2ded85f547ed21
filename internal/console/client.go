// Package console is the operator-facing side: a typed client for the
// REST API plus per-entity list controllers, submission workflows, and
// spreadsheet export.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/listview"
	"github.com/luggio/console/internal/workflow"
)

// Client is a thin typed client for the console API. All /api/v1 calls
// carry the bearer token obtained from Login.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.RWMutex
	token string
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the server's response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SetToken installs a bearer token obtained out of band.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login authenticates a staff account and stores the returned token on
// the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &out); err != nil {
		return err
	}
	c.SetToken(out.Token)
	return nil
}

// FetchPage loads one page of an entity collection. The query's filter
// map is flattened into query parameters alongside page, limit and
// search.
func FetchPage[T any](ctx context.Context, c *Client, entityPath string, q listview.Query) (*listview.Page[T], error) {
	u, err := url.Parse(c.baseURL + entityPath)
	if err != nil {
		return nil, err
	}
	params := u.Query()
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	for k, v := range q.Filter {
		params.Set(k, v)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	var out domain.PageResult[T]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &listview.Page[T]{
		Items:      out.Items,
		Page:       out.Pagination.Page,
		TotalPages: out.Pagination.TotalPages,
		Total:      out.Pagination.Total,
	}, nil
}

// FetchOne loads a single record by identifier. Edit drafts are hydrated
// from this, never from a possibly stale list row.
func FetchOne[T any](ctx context.Context, c *Client, entityPath string, id uint) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s/%d", c.baseURL, entityPath, id), nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create persists a new record.
func (c *Client) Create(ctx context.Context, entityPath string, payload any) error {
	return c.send(ctx, http.MethodPost, entityPath, payload)
}

// Update persists changes to an existing record.
func (c *Client) Update(ctx context.Context, entityPath string, id uint, payload any) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", entityPath, id), payload)
}

// Delete removes a record by identifier.
func (c *Client) Delete(ctx context.Context, entityPath string, id uint) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", entityPath, id), nil)
}

// UploadImage stores a staged file and returns the server path to
// substitute into the owning draft.
func (c *Client) UploadImage(ctx context.Context, file *workflow.StagedFile) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/uploads", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		Path string `json:"path"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Path, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, nil)
}

// do executes the request, unwraps the envelope and decodes data into
// out when non-nil.
func (c *Client) do(req *http.Request, out any) error {
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("console api: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&env); err != nil {
		return fmt.Errorf("console api: decode %s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return domain.NewAppError(domain.CodeNotFound, msg, nil)
		case http.StatusUnauthorized:
			return domain.NewAppError(domain.CodeUnauthorized, msg, nil)
		case http.StatusBadRequest:
			return domain.NewAppError(domain.CodeValidation, msg, nil)
		case http.StatusConflict:
			return domain.NewAppError(domain.CodeAlreadyExists, msg, nil)
		default:
			return domain.NewAppError(domain.CodeInternal,
				fmt.Sprintf("%s (status %d)", msg, resp.StatusCode), nil)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("console api: decode data of %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
