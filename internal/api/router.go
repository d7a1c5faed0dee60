package api

import (
	"product_catalog/internal/middleware" // Session middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Users    Registrar           // Registration
	Sessions SessionManager      // Login and logout
	Identity middleware.Identity // Session resolution for gated routes
	Products ProductService      // Ownership-scoped CRUD
	Cookie   CookieSettings      // Session cookie
}

// RegisterRoutes mounts the public and session-gated routes on r
func RegisterRoutes(r gin.IRouter, d Dependencies) {
	// Auth routes
	r.GET("/signup", SignupFormHandler())
	r.POST("/signup", SignupHandler(d.Users))
	r.GET("/login", LoginFormHandler())
	r.POST("/login", LoginHandler(d.Sessions, d.Cookie))

	// Everything below needs a live session
	gated := r.Group("", middleware.SessionMiddleware(d.Identity, d.Cookie.Name, d.Cookie.Secure))
	gated.POST("/logout", LogoutHandler(d.Sessions, d.Cookie))
	gated.GET("/produtos", ListProductsHandler(d.Products, d.Cookie))
	gated.POST("/produtos", CreateProductHandler(d.Products, d.Cookie))
	gated.GET("/produtos/:id", ViewProductHandler(d.Products, d.Cookie))
	gated.GET("/produtos/:id/edit", EditFormHandler(d.Products, d.Cookie))
	gated.POST("/produtos/:id/edit", EditProductHandler(d.Products, d.Cookie))
	gated.POST("/produtos/:id/delete", DeleteProductHandler(d.Products, d.Cookie))
}
