package database

import (
	"context"
	"errors"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) GetBudget(ctx context.Context, id uint) (models.Budget, error) {
	var b models.Budget
	err := s.db.WithContext(ctx).First(&b, id).Error
	return b, err
}

func (s *Store) ListBudgets(ctx context.Context, filter storage.BudgetFilter) ([]models.Budget, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", filter.UserID).Order("id ASC")

	if !filter.Month.IsZero() {
		query = query.Where("month = ? AND year = ?", filter.Month.Number(), filter.Month.Year())
	}

	var budgets []models.Budget
	err := query.Find(&budgets).Error
	return budgets, err
}

func (s *Store) FindBudget(ctx context.Context, userID, categoryID uint, month, year int) (models.Budget, error) {
	return findBudget(s.db.WithContext(ctx), userID, categoryID, month, year)
}

func findBudget(tx *gorm.DB, userID, categoryID uint, month, year int) (models.Budget, error) {
	var b models.Budget
	err := tx.
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year).
		First(&b).Error
	return b, err
}

func (s *Store) CreateBudget(ctx context.Context, create models.BudgetCreate) (models.Budget, error) {
	b := create.Model()
	err := s.db.WithContext(ctx).Create(&b).Error
	return b, err
}

func (s *Store) UpdateBudget(ctx context.Context, id uint, patch models.BudgetPatch) (models.Budget, error) {
	var b models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}

		b = b.Merge(patch)
		return tx.Save(&b).Error
	})
	return b, err
}

func (s *Store) DeleteBudget(ctx context.Context, id uint) (bool, error) {
	return deleted(s.db.WithContext(ctx).Delete(&models.Budget{}, id))
}

// UpsertBudget serializes upserts in the process and runs them in a
// transaction. The unique index on the budget key turns a racing insert
// from another process into an update of the stored budget.
func (s *Store) UpsertBudget(ctx context.Context, create models.BudgetCreate) (models.Budget, bool, error) {
	s.upsertMu.Lock()
	defer s.upsertMu.Unlock()

	var budget models.Budget
	var created bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findBudget(tx, create.UserID, create.CategoryID, create.Month, create.Year)
		if err == nil {
			budget, err = updateBudgetAmount(tx, existing, create)
			return err
		}

		if !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		budget, created, err = insertBudget(tx, create)
		return err
	})
	if err != nil {
		return models.Budget{}, false, err
	}

	return budget, created, nil
}

// insertBudget inserts the budget. If a budget with the same key exists
// already, its amount is updated instead and created is false.
func insertBudget(tx *gorm.DB, create models.BudgetCreate) (models.Budget, bool, error) {
	budget := create.Model()
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"}},
		DoNothing: true,
	}).Create(&budget)
	if res.Error != nil {
		return models.Budget{}, false, res.Error
	}

	if res.RowsAffected > 0 {
		return budget, true, nil
	}

	existing, err := findBudget(tx, create.UserID, create.CategoryID, create.Month, create.Year)
	if err != nil {
		return models.Budget{}, false, err
	}

	budget, err = updateBudgetAmount(tx, existing, create)
	return budget, false, err
}

func updateBudgetAmount(tx *gorm.DB, existing models.Budget, create models.BudgetCreate) (models.Budget, error) {
	budget := existing.Merge(models.BudgetPatch{Amount: &create.Amount})
	err := tx.Model(&budget).Update("amount", budget.Amount).Error
	return budget, err
}
