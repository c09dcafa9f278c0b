package memory

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
)

func (s *Store) GetUser(_ context.Context, id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.User{}, models.ErrGeneral
	}
	return get(s.users, id, "user")
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.User{}, models.ErrGeneral
	}

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.NotFound("user")
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.User{}, models.ErrGeneral
	}

	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, models.ErrUsernameNotUnique
		}
	}

	user.ID = s.nextID("user")
	user.Email = copyPtr(user.Email)
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	return user, nil
}
