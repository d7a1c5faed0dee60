package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"product_catalog/internal/domain"     // Domain errors
	"product_catalog/internal/middleware" // Login notice

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const (
	listPath   = "/produtos" // Safe default view once logged in
	loginPath  = "/login"    // Safe default view when anonymous
	signupPath = "/signup"   // Registration form
)

// notice is a user facing error: a status, a one-line message and where to go next
type notice struct {
	status   int
	message  string
	redirect string
}

// noticeFor maps an error to the notice shown for action ("view", "edit", "delete", ...)
func noticeFor(err error, action string) notice {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return notice{http.StatusUnauthorized, middleware.LoginRequiredNotice, loginPath}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return notice{http.StatusUnauthorized, "Incorrect credentials!", loginPath}
	case errors.Is(err, domain.ErrDuplicateUsername):
		return notice{http.StatusConflict, "User already exists!", signupPath}
	case errors.Is(err, domain.ErrNotFoundOrForbidden):
		return notice{http.StatusNotFound, "Product not found or you do not have permission to view it.", listPath}
	case errors.Is(err, domain.ErrForbidden):
		return notice{http.StatusForbidden, "You do not have permission to " + action + " this product!", listPath}
	case errors.Is(err, domain.ErrNotFound):
		return notice{http.StatusNotFound, "Product not found.", listPath}
	case errors.Is(err, domain.ErrInvalidProduct):
		return notice{http.StatusBadRequest, "Invalid product: name is required and price must be a non-negative number.", listPath}
	default:
		return notice{http.StatusInternalServerError, "Something went wrong, please try again.", fallbackPath(action)}
	}
}

// fallbackPath is the safe view for an action when nothing more specific applies
func fallbackPath(action string) string {
	switch action {
	case "register":
		return signupPath
	case "login", "logout":
		return loginPath
	default:
		return listPath
	}
}

// respondError writes the notice for err and logs failures that are not the caller's fault
func respondError(c *gin.Context, cookie CookieSettings, err error, action string) {
	n := noticeFor(err, action)
	if n.status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":   c.FullPath(), // Route
			"action": action,       // Attempted operation
			"error":  err.Error(),  // Error message
		}).Error("Request failed")
	}
	if errors.Is(err, domain.ErrUnauthenticated) {
		cookie.clear(c) // Drop the dead session cookie
	}
	c.JSON(n.status, gin.H{"error": n.message, "redirect": n.redirect})
}
