package listing

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle state of a View.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Page is an immutable snapshot of a View, ready for a render sink.
type Page struct {
	Items      []Item
	PageIndex  int
	TotalPages int
	TotalItems int // filtered
	AllItems   int // canonical
	PageSize   int
	Query      string
	State      State
	Failed     bool
	Err        error
	Generation uint64
	LoadedAt   time.Time
}

// Empty reports whether there is nothing to show on any page.
func (p Page) Empty() bool {
	return p.TotalItems == 0
}

// HasPrev reports whether Prev would move.
func (p Page) HasPrev() bool {
	return p.PageIndex > 1
}

// HasNext reports whether Next would move.
func (p Page) HasNext() bool {
	return p.PageIndex < p.TotalPages
}

// View is the state of one listing page: canonical and filtered sequences,
// the query, the page index and the load state. All methods are safe for
// concurrent use. Filtering and paging never fetch.
type View struct {
	mu sync.Mutex

	pageSize   int
	store      Store
	page       int
	state      State
	lastErr    error
	generation uint64
	cancel     context.CancelFunc
	loadedAt   time.Time
	now        func() time.Time
}

// NewView creates a View in the Loading state with an empty listing.
func NewView(pageSize int) (*View, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	v := &View{
		pageSize: pageSize,
		page:     1,
		state:    StateLoading,
		now:      time.Now,
	}
	v.store.reset(nil)
	return v, nil
}

// Reload fetches the listing and replaces the canonical sequence wholesale,
// resetting the query and going back to page 1. A reload issued while
// another is in flight cancels the older one, and the older result is
// discarded even if it arrives last (ErrStaleLoad). Fetch failures move the
// view to StateError with an empty listing and are reported in Page.Err.
func (v *View) Reload(ctx context.Context, fetch FetchFunc) (Page, error) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = StateLoading
	v.mu.Unlock()

	items, err := fetchSorted(fetchCtx, fetch)

	v.mu.Lock()
	defer v.mu.Unlock()
	cancel()
	if gen != v.generation {
		return v.snapshotLocked(), ErrStaleLoad
	}
	v.cancel = nil

	res := v.store.commit(items, err)
	v.state = StateReady
	if res.Failed {
		v.state = StateError
	}
	v.lastErr = res.Err
	v.page = 1
	v.loadedAt = v.now()
	return v.snapshotLocked(), nil
}

// Search re-filters the canonical sequence and returns to page 1.
func (v *View) Search(query string) Page {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.store.Search(query)
	v.page = 1
	return v.snapshotLocked()
}

// Next advances one page, saturating at the last page.
func (v *View) Next() Page {
	return v.step(+1)
}

// Prev goes back one page, saturating at page 1.
func (v *View) Prev() Page {
	return v.step(-1)
}

// Goto jumps to page, clamped into range.
func (v *View) Goto(page int) Page {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.page = Clamp(page, v.pageCountLocked())
	return v.snapshotLocked()
}

// Snapshot returns the current page without changing anything.
func (v *View) Snapshot() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// State returns the current lifecycle state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close cancels any fetch still in flight.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *View) step(direction int) Page {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.page = Advance(v.page, direction, v.pageCountLocked())
	return v.snapshotLocked()
}

func (v *View) pageCountLocked() int {
	return PageCount(len(v.store.filtered), v.pageSize)
}

func (v *View) snapshotLocked() Page {
	filtered := v.store.filtered
	total := v.pageCountLocked()
	page := Clamp(v.page, total)
	items := cloneItems(VisibleWindow(filtered, v.pageSize, page))

	return Page{
		Items:      items,
		PageIndex:  page,
		TotalPages: total,
		TotalItems: len(filtered),
		AllItems:   len(v.store.canonical),
		PageSize:   v.pageSize,
		Query:      v.store.Query(),
		State:      v.state,
		Failed:     v.state == StateError,
		Err:        v.lastErr,
		Generation: v.generation,
		LoadedAt:   v.loadedAt,
	}
}
