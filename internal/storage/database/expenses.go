package database

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"gorm.io/gorm"
)

func (s *Store) GetExpense(ctx context.Context, id uint) (models.Expense, error) {
	var e models.Expense
	err := s.db.WithContext(ctx).First(&e, id).Error
	return e, err
}

func (s *Store) ListExpenses(ctx context.Context, filter storage.ExpenseFilter) ([]models.Expense, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ?", filter.UserID).
		Order("date DESC").
		Order("id ASC")

	if !filter.Month.IsZero() {
		start := filter.Month.Time()
		query = query.Where("date >= ? AND date < ?", start, filter.Month.AddDate(0, 1).Time())
	}

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var expenses []models.Expense
	err := query.Find(&expenses).Error
	return expenses, err
}

func (s *Store) CreateExpense(ctx context.Context, create models.ExpenseCreate) (models.Expense, error) {
	e := create.Model()
	err := s.db.WithContext(ctx).Create(&e).Error
	return e, err
}

func (s *Store) UpdateExpense(ctx context.Context, id uint, patch models.ExpensePatch) (models.Expense, error) {
	var e models.Expense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}

		e = e.Merge(patch)
		return tx.Save(&e).Error
	})
	return e, err
}

func (s *Store) DeleteExpense(ctx context.Context, id uint) (bool, error) {
	return deleted(s.db.WithContext(ctx).Delete(&models.Expense{}, id))
}
