package api

import (
	"context"
	"time"

	"product_catalog/internal/domain"
)

type fakeRegistrar struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeRegistrar) Register(_ context.Context, username, password string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[username]; ok {
		return nil, domain.ErrDuplicateUsername
	}
	u := &domain.User{ID: uint(len(f.users) + 1), Username: username, Password: "hashed:" + password}
	f.users[username] = u
	return u, nil
}

type fakeSessions struct {
	passwords map[string]string
	open      map[string]bool
	loggedOut []string
}

func (f *fakeSessions) Login(_ context.Context, username, password string) (string, error) {
	if pw, ok := f.passwords[username]; !ok || pw != password {
		return "", domain.ErrInvalidCredentials
	}
	token := "token-" + username
	f.open[token] = true
	return token, nil
}

func (f *fakeSessions) Logout(_ context.Context, token string) error {
	delete(f.open, token)
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeSessions) TTL() time.Duration { return time.Hour }

// fakeIdentity treats every token as live unless it is listed as stale
type fakeIdentity struct {
	stale map[string]bool
}

func (f *fakeIdentity) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if f.stale[token] {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.User{ID: 1, Username: "alice"}, nil
}

type fakeProductService struct {
	err         error
	product     *domain.Product
	viewCalls   int
	gotSession  string
	gotID       uint
	gotFields   domain.ProductFields
	deleteCalls int
}

func (f *fakeProductService) ListMine(_ context.Context, session string) ([]domain.Product, error) {
	f.gotSession = session
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Product{*f.product}, nil
}

func (f *fakeProductService) CreateMine(_ context.Context, session string, fields domain.ProductFields) (*domain.Product, error) {
	f.gotSession, f.gotFields = session, fields
	if f.err != nil {
		return nil, f.err
	}
	p := &domain.Product{ID: 10, UserID: 1}
	fields.Apply(p)
	return p, nil
}

func (f *fakeProductService) ViewOne(_ context.Context, session string, id uint) (*domain.Product, error) {
	f.gotSession, f.gotID = session, id
	f.viewCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeProductService) EditableOne(_ context.Context, session string, id uint) (*domain.Product, error) {
	return f.ViewOne(context.Background(), session, id)
}

func (f *fakeProductService) EditMine(_ context.Context, session string, id uint, fields domain.ProductFields) (*domain.Product, error) {
	f.gotSession, f.gotID, f.gotFields = session, id, fields
	if f.err != nil {
		return nil, f.err
	}
	p := *f.product
	fields.Apply(&p)
	return &p, nil
}

func (f *fakeProductService) DeleteMine(_ context.Context, session string, id uint) error {
	f.gotSession, f.gotID = session, id
	f.deleteCalls++
	return f.err
}
