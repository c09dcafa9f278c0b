package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
)

func (s *Store) GetBudget(_ context.Context, id uint) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Budget{}, models.ErrGeneral
	}
	return get(s.budgets, id, "budget")
}

func (s *Store) ListBudgets(_ context.Context, filter storage.BudgetFilter) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}
	return list(s.budgets, filter.Match, func(b models.Budget) uint { return b.ID }), nil
}

func (s *Store) FindBudget(_ context.Context, userID, categoryID uint, month, year int) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Budget{}, models.ErrGeneral
	}
	return s.findBudget(userID, categoryID, month, year)
}

// findBudget looks up a budget by its key. The lock must be held.
func (s *Store) findBudget(userID, categoryID uint, month, year int) (models.Budget, error) {
	for _, b := range s.budgets {
		if b.UserID == userID && b.CategoryID == categoryID && b.Month == month && b.Year == year {
			return b, nil
		}
	}
	return models.Budget{}, models.NotFound("budget")
}

func (s *Store) CreateBudget(_ context.Context, create models.BudgetCreate) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Budget{}, models.ErrGeneral
	}
	return s.createBudget(create), nil
}

// createBudget stores a new budget. The write lock must be held.
func (s *Store) createBudget(create models.BudgetCreate) models.Budget {
	b := create.Model()
	b.ID = s.nextID("budget")
	b.CreatedAt = s.now()
	s.budgets[b.ID] = b
	return b
}

func (s *Store) UpdateBudget(_ context.Context, id uint, patch models.BudgetPatch) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Budget{}, models.ErrGeneral
	}

	b, err := get(s.budgets, id, "budget")
	if err != nil {
		return models.Budget{}, err
	}

	b = b.Merge(patch)
	s.budgets[id] = b
	return b, nil
}

func (s *Store) DeleteBudget(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, models.ErrGeneral
	}

	if _, ok := s.budgets[id]; !ok {
		return false, nil
	}

	delete(s.budgets, id)
	return true, nil
}

// UpsertBudget runs lookup and write under the write lock.
func (s *Store) UpsertBudget(_ context.Context, create models.BudgetCreate) (models.Budget, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Budget{}, false, models.ErrGeneral
	}

	existing, err := s.findBudget(create.UserID, create.CategoryID, create.Month, create.Year)
	if err != nil {
		return s.createBudget(create), true, nil
	}

	updated := existing.Merge(models.BudgetPatch{Amount: &create.Amount})
	s.budgets[updated.ID] = updated
	return updated, false, nil
}
