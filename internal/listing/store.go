package listing

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
)

// FetchFunc fetches a complete listing from the ledger.
type FetchFunc func(ctx context.Context) ([]Item, error)

// LoadResult reports the outcome of a load. A failed load leaves the store
// empty; Failed separates that from a legitimately empty listing.
type LoadResult struct {
	Count  int
	Failed bool
	Err    error
}

// Store holds the canonical (sorted, unfiltered) listing and the current
// filtered view of it. It is not safe for concurrent use; View adds locking.
type Store struct {
	canonical []Item
	filtered  []Item
	query     string
}

// Load fetches, sorts by ID and replaces both sequences. Fetch errors and
// panics are absorbed into the result.
func (s *Store) Load(ctx context.Context, fetch FetchFunc) LoadResult {
	return s.commit(fetchSorted(ctx, fetch))
}

// commit installs the outcome of fetchSorted. View.Reload runs the fetch
// outside its lock and commits only when no newer reload has started.
func (s *Store) commit(items []Item, err error) LoadResult {
	if err != nil {
		s.reset(nil)
		return LoadResult{Failed: true, Err: err}
	}
	s.reset(items)
	return LoadResult{Count: len(items)}
}

// Filter is the pure filter over the canonical sequence; it does not change the store.
func (s *Store) Filter(query string) []Item {
	return Filter(s.canonical, query)
}

// Search narrows the filtered sequence to query. A blank query restores the canonical one.
func (s *Store) Search(query string) []Item {
	s.query = strings.TrimSpace(query)
	s.filtered = s.Filter(query)
	return cloneItems(s.filtered)
}

// Canonical returns a copy of the canonical sequence.
func (s *Store) Canonical() []Item {
	return cloneItems(s.canonical)
}

// Filtered returns a copy of the current filtered sequence.
func (s *Store) Filtered() []Item {
	return cloneItems(s.filtered)
}

// Query is the text the filtered sequence was built with.
func (s *Store) Query() string {
	return s.query
}

func (s *Store) reset(items []Item) {
	if items == nil {
		items = []Item{}
	}
	s.canonical = items
	s.filtered = slices.Clone(items)
	s.query = ""
}

func fetchSorted(ctx context.Context, fetch FetchFunc) (items []Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("%w: %v", ErrFetchPanicked, r)
		}
	}()

	raw, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	items = make([]Item, len(raw))
	for i, it := range raw {
		items[i] = it.clone()
	}
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}
