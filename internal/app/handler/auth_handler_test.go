package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, store *repository.MemoryStore, login, password string, isAdmin bool) *ds.User {
	t.Helper()
	user := &ds.User{
		Login:    login,
		Password: generateHashString(password),
		FullName: "Test User",
		IsAdmin:  isAdmin,
	}
	require.NoError(t, store.CreateUser(user))
	return user
}

func TestLoginUser_Success(t *testing.T) {
	store := repository.NewMemoryStore()
	seedUser(t, store, "moderator", "secret123", false)
	r, _ := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"login": "moderator", "password": "secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "moderator", resp.User.Login)
	require.False(t, resp.User.IsAdmin)

	// Выданный токен открывает админские маршруты
	req = httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rw = httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	store := repository.NewMemoryStore()
	seedUser(t, store, "moderator", "secret123", false)
	r, _ := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"login": "moderator", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestRegisterUser_RequiresAdmin(t *testing.T) {
	store := repository.NewMemoryStore()
	r, authHandler := setupRouter(store)

	body := `{"login": "newuser", "password": "secret123", "full_name": "New User"}`

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusUnauthorized, rw.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(authHandler))
	rw = httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusCreated, rw.Code)

	user, err := store.GetUserByLogin("newuser")
	require.NoError(t, err)
	// Пароль хранится только в виде хеша
	require.NotEqual(t, "secret123", user.Password)
}

func TestRegisterUser_DuplicateLogin(t *testing.T) {
	store := repository.NewMemoryStore()
	seedUser(t, store, "moderator", "secret123", false)
	r, authHandler := setupRouter(store)

	body := `{"login": "moderator", "password": "secret123", "full_name": "Clone"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(authHandler))
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestLogoutUser_BlacklistsToken(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	port, err := strconv.Atoi(m.Port())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis.Host = m.Host()
	cfg.Redis.Port = port

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	require.NoError(t, err)
	defer redisClient.Close()

	store := repository.NewMemoryStore()
	seedUser(t, store, "moderator", "secret123", false)

	gin.SetMode(gin.TestMode)
	authHandler := NewAuthHandler(store, redisClient, cfg)
	h := NewHandler(store, nil, nil, authHandler)
	r := gin.New()
	h.RegisterAPIRoutes(r,
		middleware.NewAuthMiddleware(redisClient, cfg),
		middleware.NewCacheMiddleware(redisClient),
		cfg.Cache.PageTTL)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		bytes.NewBufferString(`{"login": "moderator", "password": "secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rw = httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)

	// После выхода токен больше не принимается
	req = httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rw = httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}
