package handler

import (
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/middleware"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{PageTTL: time.Minute},
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

// setupRouter собирает полный роутер на in-memory хранилище,
// без Redis и MinIO
func setupRouter(store repository.Store) (*gin.Engine, *AuthHandler) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	authHandler := NewAuthHandler(store, nil, cfg)
	h := NewHandler(store, nil, nil, authHandler)

	r := gin.New()
	h.RegisterAPIRoutes(r,
		middleware.NewAuthMiddleware(nil, cfg),
		middleware.NewCacheMiddleware(nil),
		cfg.Cache.PageTTL)

	return r, authHandler
}

func adminToken(authHandler *AuthHandler) string {
	token, _ := authHandler.issueToken(&ds.User{ID: 1, Login: "admin", IsAdmin: true})
	return token
}

func staffToken(authHandler *AuthHandler) string {
	token, _ := authHandler.issueToken(&ds.User{ID: 2, Login: "staff", IsAdmin: false})
	return token
}
