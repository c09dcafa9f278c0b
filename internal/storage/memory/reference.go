package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
)

func (s *Store) GetResource(_ context.Context, id uint) (models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Resource{}, models.ErrGeneral
	}
	return get(s.resources, id, "resource")
}

func (s *Store) ListResources(_ context.Context, filter storage.ResourceFilter) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}
	return list(s.resources, filter.Match, func(r models.Resource) uint { return r.ID }), nil
}

func (s *Store) CreateResource(_ context.Context, create models.ResourceCreate) (models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Resource{}, models.ErrGeneral
	}

	r := create.Model()
	r.ID = s.nextID("resource")
	r.Address = copyPtr(r.Address)
	r.Distance = copyPtr(r.Distance)
	s.resources[r.ID] = r
	return r, nil
}

func (s *Store) ToggleBookmark(_ context.Context, id uint) (models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Resource{}, models.ErrGeneral
	}

	r, err := get(s.resources, id, "resource")
	if err != nil {
		return models.Resource{}, err
	}

	r.Bookmarked = !r.Bookmarked
	s.resources[id] = r
	return r, nil
}

func (s *Store) GetArticle(_ context.Context, id uint) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.Article{}, models.ErrGeneral
	}
	return get(s.articles, id, "article")
}

func (s *Store) ListArticles(_ context.Context, filter storage.ArticleFilter) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, models.ErrGeneral
	}
	return list(s.articles, filter.Match, func(a models.Article) uint { return a.ID }), nil
}

func (s *Store) CreateArticle(_ context.Context, create models.ArticleCreate) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Article{}, models.ErrGeneral
	}

	a := create.Model()
	a.ID = s.nextID("article")
	a.ImageURL = copyPtr(a.ImageURL)
	s.articles[a.ID] = a
	return a, nil
}
