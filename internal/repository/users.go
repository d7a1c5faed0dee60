// Package repository persists users and products with GORM.
package repository

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping

	"product_catalog/internal/domain" // Importing domain models
	"product_catalog/internal/utils"  // Password hashing

	"gorm.io/gorm" // GORM ORM library
)

// UserStore is the credential store: it registers users and checks their passwords
type UserStore struct {
	db     *gorm.DB              // Database handle
	hasher *utils.PasswordHasher // PBKDF2 hasher for new and stored credentials
}

// NewUserStore creates a UserStore
func NewUserStore(db *gorm.DB, hasher *utils.PasswordHasher) *UserStore {
	return &UserStore{db: db, hasher: hasher}
}

// Register creates a user with a freshly salted password hash
func (s *UserStore) Register(ctx context.Context, username, password string) (*domain.User, error) {
	// Reject usernames that are already taken
	_, err := s.FindByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{Username: username, Password: hash}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// A concurrent registration can still hit the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// FindByUsername returns domain.ErrNotFound when no user has that username
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err, "find user by username")
	}
	return &user, nil
}

// FindByID returns domain.ErrNotFound when the user does not exist
func (s *UserStore) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, "find user by id")
	}
	return &user, nil
}

// Verify checks password against the user's stored hash
func (s *UserStore) Verify(user *domain.User, password string) bool {
	if user == nil {
		return false
	}
	return s.hasher.Verify(user.Password, password)
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
