// Package repository provides data access for the course platform.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert collides with the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	// FindCredentialsByEmail loads only the columns login needs: id,
	// email, password hash, salt and roles.
	FindCredentialsByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("id", "email", "password_hash", "salt", "roles").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %s: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
