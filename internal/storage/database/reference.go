package database

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	"gorm.io/gorm"
)

func (s *Store) GetResource(ctx context.Context, id uint) (models.Resource, error) {
	var r models.Resource
	err := s.db.WithContext(ctx).First(&r, id).Error
	return r, err
}

// ListResources filters by type and bookmark in the database and by
// name pattern afterwards.
func (s *Store) ListResources(ctx context.Context, filter storage.ResourceFilter) ([]models.Resource, error) {
	query := s.db.WithContext(ctx).Order("id ASC")

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	if filter.Bookmarked != nil {
		query = query.Where("bookmarked = ?", *filter.Bookmarked)
	}

	var resources []models.Resource
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}

	matching := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if filter.MatchName(r) {
			matching = append(matching, r)
		}
	}

	return matching, nil
}

func (s *Store) CreateResource(ctx context.Context, create models.ResourceCreate) (models.Resource, error) {
	r := create.Model()
	err := s.db.WithContext(ctx).Create(&r).Error
	return r, err
}

// ToggleBookmark flips the bookmark in a single UPDATE statement.
func (s *Store) ToggleBookmark(ctx context.Context, id uint) (models.Resource, error) {
	var r models.Resource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Resource{}).Where("id = ?", id).Update("bookmarked", gorm.Expr("NOT bookmarked"))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return models.NotFound("resource")
		}

		return tx.First(&r, id).Error
	})
	return r, err
}

func (s *Store) GetArticle(ctx context.Context, id uint) (models.Article, error) {
	var a models.Article
	err := s.db.WithContext(ctx).First(&a, id).Error
	return a, err
}

func (s *Store) ListArticles(ctx context.Context, filter storage.ArticleFilter) ([]models.Article, error) {
	query := s.db.WithContext(ctx).Order("id ASC")

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var articles []models.Article
	err := query.Find(&articles).Error
	return articles, err
}

func (s *Store) CreateArticle(ctx context.Context, create models.ArticleCreate) (models.Article, error) {
	a := create.Model()
	err := s.db.WithContext(ctx).Create(&a).Error
	return a, err
}
