package database

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"gorm.io/gorm"
)

func (s *Store) GetCategory(ctx context.Context, id uint) (models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (s *Store) ListCategories(ctx context.Context, filter storage.CategoryFilter) ([]models.Category, error) {
	query := s.db.WithContext(ctx).Order("id ASC")
	if filter.UserID != nil {
		query = query.Where("user_id IS NULL OR user_id = ?", *filter.UserID)
	}

	var categories []models.Category
	err := query.Find(&categories).Error
	return categories, err
}

func (s *Store) CreateCategory(ctx context.Context, create models.CategoryCreate) (models.Category, error) {
	c := create.Model()
	err := s.db.WithContext(ctx).Create(&c).Error
	return c, err
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, patch models.CategoryPatch) (models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}

		c = c.Merge(patch)
		return tx.Save(&c).Error
	})
	return c, err
}

// DeleteCategory removes the category and its budgets. Expenses of the
// category become uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Expense{}).Where("category_id = ?", id).Update("category_id", nil).Error
		if err != nil {
			return err
		}

		err = tx.Where("category_id = ?", id).Delete(&models.Budget{}).Error
		if err != nil {
			return err
		}

		removed, err = deleted(tx.Delete(&models.Category{}, id))
		return err
	})
	return removed, err
}
