package repository

import (
	"context" // Request scoped cancellation
	"fmt"     // Error wrapping

	"product_catalog/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ProductStore persists products; it does not check ownership
type ProductStore struct {
	db *gorm.DB // Database handle
}

// NewProductStore creates a ProductStore
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Create inserts p and fills in its ID
func (s *ProductStore) Create(ctx context.Context, p *domain.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Get returns domain.ErrNotFound when the product does not exist
func (s *ProductStore) Get(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, "get product")
	}
	return &p, nil
}

// ListByOwner returns every product of userID in insertion order
func (s *ProductStore) ListByOwner(ctx context.Context, userID uint) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update overwrites name, description and price; a missing id is not an error
func (s *ProductStore) Update(ctx context.Context, id uint, fields domain.ProductFields) error {
	err := s.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]any{
		"name":        fields.Name,        // New name
		"description": fields.Description, // New description, empty allowed
		"price":       fields.Price,       // New price
	}).Error
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes the product if present
func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
