package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product_catalog/internal/domain"
	"product_catalog/internal/session"
	"product_catalog/internal/utils"
)

// memoryUsers is a credential store kept in a map
type memoryUsers struct {
	hasher *utils.PasswordHasher
	users  []*domain.User
}

func (m *memoryUsers) Register(username, password string) (*domain.User, error) {
	if _, err := m.FindByUsername(context.Background(), username); err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	hash, err := m.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{ID: uint(len(m.users) + 1), Username: username, Password: hash}
	m.users = append(m.users, u)
	return u, nil
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryUsers) FindByID(_ context.Context, id uint) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memoryUsers) Verify(user *domain.User, password string) bool {
	return m.hasher.Verify(user.Password, password)
}

func TestScenario_AliceAndBob(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	users := &memoryUsers{hasher: utils.NewPasswordHasher(1000)}
	auth := session.NewAuthenticator(users, session.NewRedisStore(rdb, time.Hour), "secret", time.Hour)
	svc := NewProductService(auth, newFakeProducts(), utils.NewJSONCache(rdb, time.Minute))
	ctx := context.Background()

	aliceUser, err := users.Register("alice", "wonderland")
	require.NoError(t, err)
	_, err = users.Register("alice", "again")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	aliceSession, err := auth.Login(ctx, "alice", "wonderland")
	require.NoError(t, err)

	created, err := svc.CreateMine(ctx, aliceSession, domain.ProductFields{
		Name: "Book", Description: "Novel", Price: decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)

	list, err := svc.ListMine(ctx, aliceSession)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Book", list[0].Name)
	assert.Equal(t, "Novel", list[0].Description)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, aliceUser.ID, list[0].UserID)

	_, err = users.Register("bob", "builder")
	require.NoError(t, err)
	bobSession, err := auth.Login(ctx, "bob", "builder")
	require.NoError(t, err)

	_, err = svc.ViewOne(ctx, bobSession, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFoundOrForbidden)

	_, err = svc.EditMine(ctx, bobSession, created.ID, domain.ProductFields{Name: "Mine now", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, auth.Logout(ctx, aliceSession))
	_, err = svc.ListMine(ctx, aliceSession)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
