package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds the list query parameters shared by every entity:
// the page number, the per-page limit, the (already debounced) search term,
// and entity-specific filters such as status, month, or a date range.
type PageRequest struct {
	Page   int
	Limit  int
	Search string
	Filter map[string]string
}

// PageMeta describes the pagination metadata returned alongside list items.
type PageMeta struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
}

// PageResult is one page of a server-side paginated collection.
// Items keep the order the repository returned them in.
type PageResult[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}
