package middleware

import (
	"context"  // Request scoped cancellation
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"product_catalog/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const (
	sessionTokenKey = "sessionToken" // Context key holding the raw session token
	userIDKey       = "userID"       // Context key holding the resolved user id
)

// LoginRequiredNotice is shown when a gated route is hit without a live session
const LoginRequiredNotice = "Please log in to access this page."

// Identity resolves a session token to the authenticated user
type Identity interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// SessionMiddleware takes the session token from a Bearer Authorization header
// or, failing that, the named cookie, and resolves it before any handler runs.
// Missing, expired or revoked sessions abort with 401 and the cookie is cleared.
func SessionMiddleware(identity Identity, cookieName string, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // API clients
		}
		if cookie, err := c.Cookie(cookieName); token == "" && err == nil {
			token = cookie // Browser clients
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": LoginRequiredNotice, "redirect": "/login"})
			return
		}
		user, err := identity.CurrentUser(c.Request.Context(), token)
		if errors.Is(err, domain.ErrUnauthenticated) {
			// Drop the dead session cookie
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, "", -1, "/", "", secureCookie, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": LoginRequiredNotice, "redirect": "/login"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(), // Route
				"error": err.Error(),  // Error message
			}).Error("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again.", "redirect": "/login"})
			return
		}
		c.Set(sessionTokenKey, token) // Token is passed explicitly to the service layer
		c.Set(userIDKey, user.ID)     // Resolved user, for logging
		c.Next()
	}
}

// SessionToken returns the token stored by SessionMiddleware
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}

// UserID returns the user resolved by SessionMiddleware
func UserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}
