package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// EntityStore wraps a Collection with CRUD over records identified by a
// string id. A mutex serializes read-modify-write cycles so concurrent
// handlers never lose updates; every mutation loads the current slice,
// applies the change and saves the whole slice back.
type EntityStore[T any] struct {
	col   *Collection[T]
	id    func(*T) string
	match func(*T, string) bool

	mu  sync.Mutex
	now func() time.Time

	idMu   sync.Mutex
	lastID int64
}

// NewEntityStore builds a store. id extracts the record id and match decides
// whether a record satisfies a search keyword (already lower-cased).
func NewEntityStore[T any](col *Collection[T], id func(*T) string, match func(*T, string) bool) *EntityStore[T] {
	return &EntityStore[T]{col: col, id: id, match: match, now: time.Now}
}

// List returns all records, filtered by the search keyword when non-empty.
// Matching is case-insensitive substring matching, delegated to the match
// function with the keyword pre-lowered.
func (s *EntityStore[T]) List(ctx context.Context, search string) []T {
	items := s.col.Load(ctx)
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}
	filtered := make([]T, 0, len(items))
	for i := range items {
		if s.match(&items[i], search) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

// Get returns the record with the given id, or false when no record has it.
func (s *EntityStore[T]) Get(ctx context.Context, id string) (T, bool) {
	items := s.col.Load(ctx)
	for i := range items {
		if s.id(&items[i]) == id {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Insert appends the record and persists the collection.
func (s *EntityStore[T]) Insert(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.col.Load(ctx)
	items = append(items, item)
	return s.col.Save(ctx, items)
}

// Replace swaps the record with matching id in place. It reports false,
// without touching storage, when the id is unknown.
func (s *EntityStore[T]) Replace(ctx context.Context, id string, item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.col.Load(ctx)
	for i := range items {
		if s.id(&items[i]) == id {
			items[i] = item
			return true, s.col.Save(ctx, items)
		}
	}
	return false, nil
}

// Remove deletes the record with the given id and returns it. An unknown id
// is a no-op: the collection is not rewritten and found is false.
func (s *EntityStore[T]) Remove(ctx context.Context, id string) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	items := s.col.Load(ctx)
	for i := range items {
		if s.id(&items[i]) == id {
			removed := items[i]
			items = append(items[:i], items[i+1:]...)
			if err := s.col.Save(ctx, items); err != nil {
				return zero, false, err
			}
			return removed, true, nil
		}
	}
	return zero, false, nil
}

// Update loads the record, applies mutate to a copy and saves it back, all
// under the store lock so concurrent updates cannot interleave. It reports
// false for an unknown id.
func (s *EntityStore[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	items := s.col.Load(ctx)
	for i := range items {
		if s.id(&items[i]) == id {
			mutate(&items[i])
			if err := s.col.Save(ctx, items); err != nil {
				return zero, false, err
			}
			return items[i], true, nil
		}
	}
	return zero, false, nil
}

// Count returns the number of stored records.
func (s *EntityStore[T]) Count(ctx context.Context) int {
	return len(s.col.Load(ctx))
}

// Reset restores the collection to its seed defaults.
func (s *EntityStore[T]) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Reset(ctx)
}

// NewID issues a millisecond-timestamp id. Two calls in the same millisecond
// get strictly increasing values so ids stay unique under load.
func (s *EntityStore[T]) NewID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Paginate slices a filtered result set into 1-based pages. A page past the
// end yields an empty slice, never an error; page and size below 1 are
// normalized to 1 and the whole set.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
