package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey" example:"1"`
	Username  string    `json:"username" gorm:"uniqueIndex" example:"jamie"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName" example:"Jamie Smith"`
	Email     *string   `json:"email" example:"jamie@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2023-09-01T10:00:00Z"`
}

// UserCreate contains the fields to create a user.
//
// Password is the plain text password, it is hashed before storing.
type UserCreate struct {
	Username string
	Password string
	FullName string
	Email    *string
}

// Model returns the user to store for the input.
func (c UserCreate) Model() (User, error) {
	hash, err := HashPassword(c.Password)
	if err != nil {
		return User{}, err
	}

	return User{
		Username: c.Username,
		Password: hash,
		FullName: c.FullName,
		Email:    c.Email,
	}, nil
}

// HashPassword hashes a plain text password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plain text password matches the
// stored hash. It verifies hashes written by HashPassword, which is used
// by POST /api/users and cmd/adduser. Without authentication no request
// path checks passwords, so this is the check for stored credentials.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
