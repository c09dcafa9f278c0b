package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"golang.org/x/exp/slices"
)

func (s *Store) GetExpense(_ context.Context, id uint) (models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Expense{}, models.ErrGeneral
	}
	return get(s.expenses, id, "expense")
}

func (s *Store) ListExpenses(_ context.Context, filter storage.ExpenseFilter) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}

	expenses := list(s.expenses, filter.Match, func(e models.Expense) uint { return e.ID })

	// Most recent first. list returns ID order, which is insertion order
	slices.SortStableFunc(expenses, func(a, b models.Expense) int {
		return b.Date.Time().Compare(a.Date.Time())
	})

	if filter.Limit > 0 && len(expenses) > filter.Limit {
		expenses = expenses[:filter.Limit]
	}

	return expenses, nil
}

func (s *Store) CreateExpense(_ context.Context, create models.ExpenseCreate) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Expense{}, models.ErrGeneral
	}

	e := create.Model()
	e.ID = s.nextID("expense")
	e.CategoryID = copyPtr(e.CategoryID)
	e.CreatedAt = s.now()
	s.expenses[e.ID] = e
	return e, nil
}

func (s *Store) UpdateExpense(_ context.Context, id uint, patch models.ExpensePatch) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Expense{}, models.ErrGeneral
	}

	e, err := get(s.expenses, id, "expense")
	if err != nil {
		return models.Expense{}, err
	}

	e = e.Merge(patch)
	s.expenses[id] = e
	return e, nil
}

func (s *Store) DeleteExpense(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, models.ErrGeneral
	}

	if _, ok := s.expenses[id]; !ok {
		return false, nil
	}

	delete(s.expenses, id)
	return true, nil
}
