package database

import (
	"context"

	"github.com/fi-rise/backend/internal/models"
)

func (s *Store) GetUser(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	return u, err
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return u, err
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0
	err := s.db.WithContext(ctx).Create(&user).Error
	return user, err
}
