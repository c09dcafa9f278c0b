package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
)

func categoryID(c models.Category) uint { return c.ID }

func (s *Store) GetCategory(_ context.Context, id uint) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Category{}, models.ErrGeneral
	}
	return get(s.categories, id, "category")
}

func (s *Store) ListCategories(_ context.Context, filter storage.CategoryFilter) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}
	return list(s.categories, filter.Match, categoryID), nil
}

func (s *Store) CreateCategory(_ context.Context, create models.CategoryCreate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Category{}, models.ErrGeneral
	}

	c := create.Model()
	c.ID = s.nextID("category")
	c.UserID = copyPtr(c.UserID)
	s.categories[c.ID] = c
	return c, nil
}

func (s *Store) UpdateCategory(_ context.Context, id uint, patch models.CategoryPatch) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Category{}, models.ErrGeneral
	}

	c, err := get(s.categories, id, "category")
	if err != nil {
		return models.Category{}, err
	}

	c = c.Merge(patch)
	s.categories[id] = c
	return c, nil
}

func (s *Store) DeleteCategory(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, models.ErrGeneral
	}

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}

	// Expenses of the category become uncategorized, its budgets are removed
	for eid, e := range s.expenses {
		if e.CategoryID != nil && *e.CategoryID == id {
			s.expenses[eid] = e.Merge(models.ExpensePatch{CategoryID: models.Null[uint]()})
		}
	}
	for bid, b := range s.budgets {
		if b.CategoryID == id {
			delete(s.budgets, bid)
		}
	}

	delete(s.categories, id)
	return true, nil
}
