package listview

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Query is the single outbound request shape derived from the controller's
// view state. Search always carries the debounced term, never the raw
// keystroke value.
type Query struct {
	Page   int
	Limit  int
	Search string
	Filter map[string]string
}

// Page is one page of fetched items together with its pagination metadata.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int64
}

// FetchFunc loads one page of a remote collection.
type FetchFunc[T any] func(ctx context.Context, q Query) (*Page[T], error)

// Config parameterizes a Controller for one entity. The seven console
// screens differ only in these values, not in behavior.
type Config struct {
	// Limit is the fixed page size for this entity.
	Limit int
	// GroupSize is the paginator group size (page-number buttons per block).
	GroupSize int
	// Debounce is the quiet period applied to search input.
	Debounce time.Duration
	// Filters maps a named status filter to the query parameters it adds.
	// The empty name must be present (or absent from the map) and adds none.
	Filters map[string]map[string]string
}

// State is a consistent snapshot of everything the view renders.
type State[T any] struct {
	Items           []T
	CurrentPage     int
	TotalPages      int
	Total           int64
	Loading         bool
	Err             error
	RawSearch       string
	DebouncedSearch string
	ActiveFilter    string
	Params          map[string]string
}

// Controller owns the view state of one paginated, filtered, server-backed
// list: current page, raw and debounced search text, active status filter,
// and extra parameters such as a settlement month or an order date range.
//
// Every state change derives exactly one outbound Query. Responses are
// matched against a sequence number; a response belonging to a superseded
// query is discarded so the displayed page always reflects the most recently
// issued query (last write wins). A failed fetch records the error but keeps
// the previous items visible.
type Controller[T any] struct {
	cfg      Config
	fetch    FetchFunc[T]
	debounce *Debouncer

	mu              sync.Mutex
	currentPage     int
	rawSearch       string
	debouncedSearch string
	activeFilter    string
	params          map[string]string
	items           []T
	totalPages      int
	total           int64
	loading         bool
	err             error
	seq             uint64
	closed          bool

	onChange func()
}

// NewController creates a Controller bound to the given fetch collaborator.
// No fetch is issued until Refresh or a state-changing operation is called.
func NewController[T any](cfg Config, fetch FetchFunc[T]) *Controller[T] {
	if cfg.Limit < 1 {
		cfg.Limit = 9
	}
	if cfg.GroupSize < 1 {
		cfg.GroupSize = 10
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 400 * time.Millisecond
	}
	return &Controller[T]{
		cfg:         cfg,
		fetch:       fetch,
		debounce:    NewDebouncer(cfg.Debounce),
		currentPage: 1,
		params:      make(map[string]string),
	}
}

// OnChange registers a hook invoked after every visible state change.
// Intended for the rendering layer; must not call back into the controller
// synchronously while holding its own locks.
func (c *Controller[T]) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// SetFilter activates a named status filter. Switching filters resets the
// page to 1 and clears both the raw and the debounced search text.
func (c *Controller[T]) SetFilter(name string) {
	c.debounce.Cancel()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.activeFilter = name
	c.currentPage = 1
	c.rawSearch = ""
	c.debouncedSearch = ""
	c.refetchLocked()
	c.mu.Unlock()

	c.notify()
}

// SetSearchText records every keystroke immediately (so the input field can
// echo it) and commits the term through the debouncer. When the quiet period
// elapses, the committed term resets the page to 1 and triggers a fetch.
func (c *Controller[T]) SetSearchText(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.rawSearch = text
	c.mu.Unlock()

	c.notify()

	c.debounce.Trigger(func() {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		if c.debouncedSearch == c.rawSearch {
			c.mu.Unlock()
			return
		}
		c.debouncedSearch = c.rawSearch
		c.currentPage = 1
		c.refetchLocked()
		c.mu.Unlock()

		c.notify()
	})
}

// GoToPage navigates to page n. Out-of-range requests are ignored: no query
// is ever issued for a page below 1 or beyond the known total. Requesting the
// page already shown refetches it, which is how a failed load gets retried.
func (c *Controller[T]) GoToPage(n int) {
	c.mu.Lock()
	if c.closed || n < 1 || n > c.totalPages {
		c.mu.Unlock()
		return
	}
	c.currentPage = n
	c.refetchLocked()
	c.mu.Unlock()

	c.notify()
}

// PrevGroup jumps one paginator group back.
func (c *Controller[T]) PrevGroup() {
	c.mu.Lock()
	target := c.windowLocked().PrevGroupTarget(c.cfg.GroupSize)
	c.mu.Unlock()
	c.GoToPage(target)
}

// NextGroup jumps one paginator group forward.
func (c *Controller[T]) NextGroup() {
	c.mu.Lock()
	target := c.windowLocked().NextGroupTarget(c.totalPages, c.cfg.GroupSize)
	c.mu.Unlock()
	c.GoToPage(target)
}

// SetParam sets an extra query parameter (settlement month, order date
// range). An empty value removes the parameter. Changing a parameter resets
// the page to 1.
func (c *Controller[T]) SetParam(key, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if value == "" {
		delete(c.params, key)
	} else {
		c.params[key] = value
	}
	c.currentPage = 1
	c.refetchLocked()
	c.mu.Unlock()

	c.notify()
}

// Refresh re-issues the query for the current view state.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.refetchLocked()
	c.mu.Unlock()

	c.notify()
}

// RefreshFirstPage resets to page 1 and re-fetches, keeping search and
// filter. Used after a create so the new record's likely position is shown.
func (c *Controller[T]) RefreshFirstPage() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.currentPage = 1
	c.refetchLocked()
	c.mu.Unlock()

	c.notify()
}

// Snapshot returns a copy of the current view state.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return State[T]{
		Items:           items,
		CurrentPage:     c.currentPage,
		TotalPages:      c.totalPages,
		Total:           c.total,
		Loading:         c.loading,
		Err:             c.err,
		RawSearch:       c.rawSearch,
		DebouncedSearch: c.debouncedSearch,
		ActiveFilter:    c.activeFilter,
		Params:          maps.Clone(c.params),
	}
}

// Window returns the paginator window for the current state.
func (c *Controller[T]) Window() Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.windowLocked()
}

// Close tears the controller down. Pending debounce commits are cancelled
// and in-flight responses are discarded; no state changes after Close.
func (c *Controller[T]) Close() {
	c.debounce.Stop()

	c.mu.Lock()
	c.closed = true
	c.seq++ // orphan any in-flight fetch
	c.mu.Unlock()
}

func (c *Controller[T]) windowLocked() Window {
	return ComputeWindow(c.currentPage, c.totalPages, c.cfg.GroupSize)
}

// refetchLocked derives the Query for the current state and issues it.
// The caller must hold c.mu.
func (c *Controller[T]) refetchLocked() {
	c.seq++
	seq := c.seq
	c.loading = true
	c.err = nil

	filter := make(map[string]string, len(c.params))
	maps.Copy(filter, c.params)
	if extra, ok := c.cfg.Filters[c.activeFilter]; ok {
		maps.Copy(filter, extra)
	}

	q := Query{
		Page:   c.currentPage,
		Limit:  c.cfg.Limit,
		Search: c.debouncedSearch,
		Filter: filter,
	}

	go func() {
		page, err := c.fetch(context.Background(), q)

		c.mu.Lock()
		if c.closed || seq != c.seq {
			// Superseded by a newer query; never rendered.
			c.mu.Unlock()
			return
		}
		if err != nil {
			// Keep the previous items visible on a failed refresh.
			c.err = err
			c.loading = false
		} else {
			c.items = page.Items
			c.totalPages = page.TotalPages
			c.total = page.Total
			c.loading = false
			c.err = nil
		}
		c.mu.Unlock()

		c.notify()
	}()
}

func (c *Controller[T]) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
