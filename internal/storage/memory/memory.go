// Package memory implements storage.Store with maps held in process memory.
//
// All state is guarded by a single lock. Records are stored as values and
// replaced, never modified in place, so a record returned to a caller is a
// consistent snapshot.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Store is an in-memory storage.Store. The zero value is not usable,
// use New.
type Store struct {
	mu     sync.RWMutex
	closed bool
	now    func() time.Time

	users      map[uint]models.User
	categories map[uint]models.Category
	expenses   map[uint]models.Expense
	goals      map[uint]models.Goal
	budgets    map[uint]models.Budget
	resources  map[uint]models.Resource
	articles   map[uint]models.Article

	// ids holds the last assigned ID per entity type
	ids map[string]uint
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	log.Debug().Msg("using in-memory storage")

	return &Store{
		now:        func() time.Time { return time.Now().UTC() },
		users:      make(map[uint]models.User),
		categories: make(map[uint]models.Category),
		expenses:   make(map[uint]models.Expense),
		goals:      make(map[uint]models.Goal),
		budgets:    make(map[uint]models.Budget),
		resources:  make(map[uint]models.Resource),
		articles:   make(map[uint]models.Article),
		ids:        make(map[string]uint),
	}
}

// nextID returns the next ID for the entity type. The write lock must be held.
func (s *Store) nextID(kind string) uint {
	s.ids[kind]++
	return s.ids[kind]
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.ErrGeneral
	}
	return nil
}

// Close marks the store as closed. All later operations fail with
// models.ErrGeneral.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// get returns a copy of the record with the id.
func get[T any](m map[uint]T, id uint, kind string) (T, error) {
	v, ok := m[id]
	if !ok {
		var zero T
		return zero, models.NotFound(kind)
	}
	return v, nil
}

// list returns the records matching the filter, ordered by ID.
func list[T any](m map[uint]T, match func(T) bool, id func(T) uint) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		if match(v) {
			out = append(out, v)
		}
	}

	slices.SortFunc(out, func(a, b T) int {
		return compareID(id(a), id(b))
	})

	return out
}

func compareID(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// copyPtr returns a pointer to a copy of the value p points to.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
