package app

import (
	"context"
	"net/http"

	"movieswipe-auth/internal/auth"
	"movieswipe-auth/internal/auth/handler"
	"movieswipe-auth/internal/auth/provider/google"
	"movieswipe-auth/internal/auth/token"
	"movieswipe-auth/internal/config"
	"movieswipe-auth/internal/middleware"
	"movieswipe-auth/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	users := user.NewPostgresStore(infra.DB)

	googleVerifier, err := google.New(ctx, cfg.GoogleClientID)
	if err != nil {
		return nil, nil, err
	}

	signer, err := token.NewSigner(cfg.JWTSecret)
	if err != nil {
		return nil, nil, err
	}

	authService := auth.NewService(googleVerifier, users, signer)
	authHandler := handler.NewHandler(authService, cfg.AuthTimeout)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(signer))

	api.GET("/me", func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.JSON(200, gin.H{"user_id": userID})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
