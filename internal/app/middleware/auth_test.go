package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/redis"
	"backend/internal/app/role"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Token:         "test-secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
	}
}

func signToken(t *testing.T, cfg *config.Config, userID uint, userRole role.Role, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(cfg.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
		UserID: userID,
		Role:   userRole,
	})
	signed, err := token.SignedString([]byte(cfg.JWT.Token))
	require.NoError(t, err)
	return signed
}

func authTestRouter(am *AuthMiddleware, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(roles...), func(c *gin.Context) {
		userID := c.GetUint("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestWithAuthCheck_NoHeader(t *testing.T) {
	am := NewAuthMiddleware(nil, testAuthConfig())
	r := authTestRouter(am, role.Staff, role.Admin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestWithAuthCheck_InvalidToken(t *testing.T) {
	am := NewAuthMiddleware(nil, testAuthConfig())
	r := authTestRouter(am, role.Staff, role.Admin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestWithAuthCheck_ExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	am := NewAuthMiddleware(nil, cfg)
	r := authTestRouter(am, role.Staff, role.Admin)

	token := signToken(t, cfg, 1, role.Staff, time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestWithAuthCheck_ValidToken(t *testing.T) {
	cfg := testAuthConfig()
	am := NewAuthMiddleware(nil, cfg)
	r := authTestRouter(am, role.Staff, role.Admin)

	token := signToken(t, cfg, 42, role.Staff, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{"user_id": 42}`, rw.Body.String())
}

func TestWithAuthCheck_InsufficientRole(t *testing.T) {
	cfg := testAuthConfig()
	am := NewAuthMiddleware(nil, cfg)
	r := authTestRouter(am, role.Admin)

	token := signToken(t, cfg, 1, role.Staff, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusForbidden, rw.Code)
}

func TestWithAuthCheck_BlacklistedToken(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	port, err := strconv.Atoi(m.Port())
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.Redis.Host = m.Host()
	cfg.Redis.Port = port

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	require.NoError(t, err)
	defer redisClient.Close()

	token := signToken(t, cfg, 1, role.Staff, time.Now().Add(time.Hour))
	require.NoError(t, redisClient.WriteJWTToBlacklist(context.Background(), token, time.Hour))

	am := NewAuthMiddleware(redisClient, cfg)
	r := authTestRouter(am, role.Staff, role.Admin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}
