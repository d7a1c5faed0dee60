package main

import (
	"context" // context package is needed for Redis operations

	"product_catalog/internal/api"        // HTTP handlers and routes
	"product_catalog/internal/config"     // Custom package for configuration
	"product_catalog/internal/db"         // Database connection
	"product_catalog/internal/repository" // Credential and product stores
	"product_catalog/internal/service"    // Ownership-scoped CRUD
	"product_catalog/internal/session"    // Login, logout and current user
	"product_catalog/internal/utils"      // Password hashing and cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

const sessionCookieName = "session" // Cookie carrying the session token

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET must be set")
	}

	// Connect to the database
	conn, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire stores and services
	users := repository.NewUserStore(conn, utils.NewPasswordHasher(cfg.HashIterations))
	products := repository.NewProductStore(conn)
	sessions := session.NewAuthenticator(users, session.NewRedisStore(redisClient, cfg.SessionTTL), cfg.SessionSecret, cfg.SessionTTL)
	catalog := service.NewProductService(sessions, products, utils.NewJSONCache(redisClient, cfg.ProductCacheTTL))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, api.Dependencies{
		Users:    users,
		Sessions: sessions,
		Identity: sessions,
		Products: catalog,
		Cookie:   api.CookieSettings{Name: sessionCookieName, Secure: cfg.IsProd},
	})

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
