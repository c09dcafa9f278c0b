package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"golang.org/x/exp/slices"
)

func (s *Store) GetGoal(_ context.Context, id uint) (models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Goal{}, models.ErrGeneral
	}
	return get(s.goals, id, "goal")
}

func (s *Store) ListGoals(_ context.Context, filter storage.GoalFilter) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}

	goals := list(s.goals, filter.Match, func(g models.Goal) uint { return g.ID })

	// Earliest target date first, goals without a target date last
	slices.SortStableFunc(goals, func(a, b models.Goal) int {
		switch {
		case a.TargetDate == nil && b.TargetDate == nil:
			return 0
		case a.TargetDate == nil:
			return 1
		case b.TargetDate == nil:
			return -1
		}
		return a.TargetDate.Time().Compare(b.TargetDate.Time())
	})

	return goals, nil
}

func (s *Store) CreateGoal(_ context.Context, create models.GoalCreate) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Goal{}, models.ErrGeneral
	}

	g := create.Model()
	g.ID = s.nextID("goal")
	g.TargetDate = copyPtr(g.TargetDate)
	g.CreatedAt = s.now()
	s.goals[g.ID] = g
	return g, nil
}

func (s *Store) UpdateGoal(_ context.Context, id uint, patch models.GoalPatch) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Goal{}, models.ErrGeneral
	}

	g, err := get(s.goals, id, "goal")
	if err != nil {
		return models.Goal{}, err
	}

	g = g.Merge(patch)
	s.goals[id] = g
	return g, nil
}

func (s *Store) DeleteGoal(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, models.ErrGeneral
	}

	if _, ok := s.goals[id]; !ok {
		return false, nil
	}

	delete(s.goals, id)
	return true, nil
}
