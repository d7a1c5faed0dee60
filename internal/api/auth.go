package api

import (
	"context"  // Request scoped cancellation
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Session lifetime

	"product_catalog/internal/domain"     // Importing domain models
	"product_catalog/internal/middleware" // Session token access

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Registrar creates users
type Registrar interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
}

// SessionManager opens and closes sessions
type SessionManager interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	TTL() time.Duration
}

// CredentialsRequest is the body of signup and login, as JSON or form fields
type CredentialsRequest struct {
	Username string `form:"username" json:"username" binding:"required"` // Username must be provided
	Password string `form:"password" json:"password" binding:"required"` // Password must be provided
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Message  string `json:"message"`  // Notice
	Token    string `json:"token"`    // Session token, also set as cookie
	Redirect string `json:"redirect"` // Next view
}

// SignupFormHandler describes the signup form
func SignupFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": "signup", "fields": []string{"username", "password"}})
	}
}

// SignupHandler registers a new user
func SignupHandler(users Registrar) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Username) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required.", "redirect": signupPath})
			return
		}
		user, err := users.Register(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
		if err != nil {
			respondError(c, CookieSettings{}, err, "register")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user
			"username": user.Username, // Registered name
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": "Registration successful!", "redirect": loginPath})
	}
}

// LoginFormHandler describes the login form
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": "login", "fields": []string{"username", "password"}})
	}
}

// LoginHandler authenticates a user and starts a session
func LoginHandler(sessions SessionManager, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required.", "redirect": loginPath})
			return
		}
		token, err := sessions.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
		if err != nil {
			respondError(c, cookie, err, "login")
			return
		}
		cookie.set(c, token, sessions.TTL())
		c.JSON(http.StatusOK, AuthResponse{Message: "Logged in", Token: token, Redirect: listPath})
	}
}

// LogoutHandler ends the caller's session
func LogoutHandler(sessions SessionManager, cookie CookieSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
			respondError(c, cookie, err, "logout")
			return
		}
		cookie.clear(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": loginPath})
	}
}
