package api

import (
	"net/http" // Cookie attributes
	"time"     // Cookie lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieSettings controls the session cookie
type CookieSettings struct {
	Name   string // Cookie name
	Secure bool   // Send over HTTPS only
}

func (s CookieSettings) set(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, int(ttl.Seconds()), "/", "", s.Secure, true)
}

func (s CookieSettings) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}
