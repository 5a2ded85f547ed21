package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luggio/console/internal/domain"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 9
	maxLimit     = 100
)

// reservedParams lists query parameter names used for pagination and search,
// not for filtering.
var reservedParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"search": true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts page, limit, search, and filter parameters from
// query params. Page and limit are clamped so out-of-range values from a
// misbehaving client can never reach the repository.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	search := strings.TrimSpace(c.Query("search"))

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:   page,
		Limit:  limit,
		Search: search,
		Filter: filter,
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.Limit
		return db.Offset(offset).Limit(req.Limit)
	}
}

// Search returns a GORM scope that matches the search term against any of the
// given columns with LIKE '%term%'. An empty term leaves the query untouched.
// Column names are validated against a strict pattern to prevent SQL injection.
func Search(req domain.PageRequest, columns []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term := strings.TrimSpace(req.Search)
		if term == "" || len(columns) == 0 {
			return db
		}

		var cond *gorm.DB
		for _, col := range columns {
			if !validFieldName.MatchString(col) {
				continue
			}
			clause := db.Session(&gorm.Session{NewDB: true}).Where(col+" LIKE ?", "%"+term+"%")
			if cond == nil {
				cond = clause
			} else {
				cond = cond.Or(clause)
			}
		}
		if cond == nil {
			return db
		}
		return db.Where(cond)
	}
}

// Filter returns a GORM scope that applies WHERE conditions based on the page
// request filters. Only filter keys present in the allowed list are applied;
// others are silently ignored.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range req.Filter {
			if !validFieldName.MatchString(key) {
				continue
			}
			if !isAllowed(key, allowed) {
				continue
			}
			// Boolean columns are stored as 0/1 by the SQLite driver, so
			// "true"/"false" must bind as bools, not strings.
			if b, err := strconv.ParseBool(value); err == nil && (value == "true" || value == "false") {
				db = db.Where(key+" = ?", b)
				continue
			}
			db = db.Where(key+" = ?", value)
		}
		return db
	}
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.Limit)))
	}

	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items: items,
		Pagination: domain.PageMeta{
			Page:       req.Page,
			TotalPages: totalPages,
			Total:      total,
		},
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
