// Package service holds the ownership rules for products.
//
// Every operation takes the caller's session token, resolves it to a user and
// only then touches the repository. Reads of a product the caller does not own
// look exactly like reads of a missing product; edits and deletes of someone
// else's product are reported as forbidden.
package service

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"strconv" // Cache key formatting

	"product_catalog/internal/domain" // Importing domain models
	"product_catalog/internal/utils"  // Redis JSON cache

	"github.com/sirupsen/logrus" // Logging library
)

// Identity resolves a session token to the authenticated user
type Identity interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// ProductRepository is the persistence the service needs
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, id uint) (*domain.Product, error)
	ListByOwner(ctx context.Context, userID uint) ([]domain.Product, error)
	Update(ctx context.Context, id uint, fields domain.ProductFields) error
	Delete(ctx context.Context, id uint) error
}

// ProductService applies per-owner scoping to product CRUD
type ProductService struct {
	identity Identity          // Session resolution
	products ProductRepository // Product persistence
	lists    *utils.JSONCache  // Cached owner lists, nil disables caching
}

// NewProductService creates a ProductService; lists may be nil
func NewProductService(identity Identity, products ProductRepository, lists *utils.JSONCache) *ProductService {
	return &ProductService{identity: identity, products: products, lists: lists}
}

// ListMine returns the caller's products
func (s *ProductService) ListMine(ctx context.Context, session string) ([]domain.Product, error) {
	user, err := s.identity.CurrentUser(ctx, session)
	if err != nil {
		return nil, err
	}
	key := listKey(user.ID)
	if s.lists != nil {
		var cached []domain.Product
		found, err := s.lists.Get(ctx, key, &cached)
		if err == nil && found {
			return cached, nil
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("Product list cache read failed")
		}
	}
	products, err := s.products.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if s.lists != nil {
		if err := s.lists.Set(ctx, key, products); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("Product list cache write failed")
		}
	}
	return products, nil
}

// CreateMine stores a new product owned by the caller
func (s *ProductService) CreateMine(ctx context.Context, session string, fields domain.ProductFields) (*domain.Product, error) {
	user, err := s.identity.CurrentUser(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	p := &domain.Product{UserID: user.ID}
	fields.Apply(p)
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, user.ID)
	return p, nil
}

// ViewOne returns a product of the caller. Missing and foreign products both
// yield domain.ErrNotFoundOrForbidden.
func (s *ProductService) ViewOne(ctx context.Context, session string, id uint) (*domain.Product, error) {
	user, err := s.identity.CurrentUser(ctx, session)
	if err != nil {
		return nil, err
	}
	p, err := s.products.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(user.ID) {
		return nil, domain.ErrNotFoundOrForbidden
	}
	return p, nil
}

// EditableOne loads a product for the edit form with the same checks as EditMine
func (s *ProductService) EditableOne(ctx context.Context, session string, id uint) (*domain.Product, error) {
	_, p, err := s.owned(ctx, session, id)
	return p, err
}

// EditMine replaces name, description and price of one of the caller's products
func (s *ProductService) EditMine(ctx context.Context, session string, id uint, fields domain.ProductFields) (*domain.Product, error) {
	user, p, err := s.owned(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	fields.Apply(p)
	s.invalidate(ctx, user.ID)
	return p, nil
}

// DeleteMine removes one of the caller's products
func (s *ProductService) DeleteMine(ctx context.Context, session string, id uint) error {
	user, _, err := s.owned(ctx, session, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, user.ID)
	return nil
}

// owned resolves the caller and the product, failing with domain.ErrNotFound
// for a missing row and domain.ErrForbidden for a row owned by someone else
func (s *ProductService) owned(ctx context.Context, session string, id uint) (*domain.User, *domain.Product, error) {
	user, err := s.identity.CurrentUser(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsOwnedBy(user.ID) {
		return nil, nil, domain.ErrForbidden
	}
	return user, p, nil
}

func (s *ProductService) invalidate(ctx context.Context, userID uint) {
	if s.lists == nil {
		return
	}
	if err := s.lists.Delete(ctx, listKey(userID)); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Product list cache invalidation failed")
	}
}

func listKey(userID uint) string {
	return "products:user:" + strconv.FormatUint(uint64(userID), 10)
}
