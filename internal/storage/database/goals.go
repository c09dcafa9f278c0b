package database

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"gorm.io/gorm"
)

func (s *Store) GetGoal(ctx context.Context, id uint) (models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).First(&g, id).Error
	return g, err
}

func (s *Store) ListGoals(ctx context.Context, filter storage.GoalFilter) ([]models.Goal, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ?", filter.UserID).
		Order("target_date IS NULL").
		Order("target_date ASC").
		Order("id ASC")

	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var goals []models.Goal
	err := query.Find(&goals).Error
	return goals, err
}

func (s *Store) CreateGoal(ctx context.Context, create models.GoalCreate) (models.Goal, error) {
	g := create.Model()
	err := s.db.WithContext(ctx).Create(&g).Error
	return g, err
}

func (s *Store) UpdateGoal(ctx context.Context, id uint, patch models.GoalPatch) (models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&g, id).Error; err != nil {
			return err
		}

		g = g.Merge(patch)
		return tx.Save(&g).Error
	})
	return g, err
}

func (s *Store) DeleteGoal(ctx context.Context, id uint) (bool, error) {
	return deleted(s.db.WithContext(ctx).Delete(&models.Goal{}, id))
}
