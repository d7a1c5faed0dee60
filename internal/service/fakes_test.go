package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"product_catalog/internal/domain"
)

type fakeIdentity struct {
	sessions map[string]*domain.User
}

func (f *fakeIdentity) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if u, ok := f.sessions[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthenticated
}

type fakeProducts struct {
	mu        sync.Mutex
	nextID    uint
	rows      map[uint]domain.Product
	listCalls int
	failWith  error
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{rows: map[uint]domain.Product{}}
}

func (f *fakeProducts) Create(_ context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	p.ID = f.nextID
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProducts) Get(_ context.Context, id uint) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProducts) ListByOwner(_ context.Context, userID uint) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := []domain.Product{}
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProducts) Update(_ context.Context, id uint, fields domain.ProductFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	p, ok := f.rows[id]
	if !ok {
		return nil
	}
	fields.Apply(&p)
	f.rows[id] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.rows, id)
	return nil
}

var errBoom = errors.New("boom")
