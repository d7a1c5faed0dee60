// Package session turns credentials into sessions and sessions back into users.
//
// A session is a random id stored in Redis together with the user id it
// belongs to. Clients hold a signed token naming that id; logging out deletes
// the Redis entry, so the token stops resolving even before it expires.
package session

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"time"    // Session lifetime

	"product_catalog/internal/domain" // Importing domain models
	"product_catalog/internal/utils"  // Session token helpers

	"github.com/google/uuid"     // Session ids
	"github.com/sirupsen/logrus" // Logging library
)

// Credentials looks users up and checks their passwords
type Credentials interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	Verify(user *domain.User, password string) bool
}

// Authenticator implements login, logout and current user resolution
type Authenticator struct {
	creds  Credentials   // Credential store
	store  Store         // Session bindings
	secret string        // Token signing key
	ttl    time.Duration // Session lifetime
}

// NewAuthenticator creates an Authenticator issuing sessions that last ttl
func NewAuthenticator(creds Credentials, store Store, secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{creds: creds, store: store, secret: secret, ttl: ttl}
}

// TTL returns the lifetime of new sessions
func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}

// Login verifies the credentials and opens a session, returning its token.
// Unknown users and wrong passwords both yield domain.ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.creds.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !a.creds.Verify(user, password) {
		return "", domain.ErrInvalidCredentials
	}
	sessionID := uuid.NewString()
	if err := a.store.Save(ctx, sessionID, user.ID); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	token, err := utils.GenerateSessionToken(user.ID, sessionID, a.secret, a.ttl)
	if err != nil {
		_ = a.store.Delete(ctx, sessionID)
		return "", fmt.Errorf("sign session token: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,   // Authenticated user
		"session_id": sessionID, // New session
	}).Info("Session opened")
	return token, nil
}

// CurrentUser resolves token to its user or fails with domain.ErrUnauthenticated
func (a *Authenticator) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := utils.ParseSessionToken(token, a.secret)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	userID, found, err := a.store.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !found || userID != claims.UserID {
		return nil, domain.ErrUnauthenticated
	}
	user, err := a.creds.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout closes the session named by token. It is idempotent: tokens that
// are unknown, already logged out or unparsable succeed without effect.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseSessionToken(token, a.secret)
	if err != nil {
		return nil
	}
	if err := a.store.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    claims.UserID, // User logging out
		"session_id": claims.ID,     // Closed session
	}).Info("Session closed")
	return nil
}
