package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

const jwtIssuer = "content-api"

type AuthHandler struct {
	Store       repository.Store
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(store repository.Store, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Store:       store,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// generateHashString генерирует SHA-1 хеш из строки
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) userRole(user *ds.User) role.Role {
	if user.IsAdmin {
		return role.Admin
	}
	return role.Staff
}

func (h *AuthHandler) issueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    jwtIssuer,
		},
		UserID: user.ID,
		Role:   h.userRole(user),
	})

	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser регистрация нового пользователя админки
// @Summary Регистрация пользователя
// @Description Создание нового пользователя админки (только для администраторов)
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	exists, _ := h.Store.UserExistsByLogin(request.Login)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("user with this login already exists"))
		return
	}

	user := ds.User{
		Login:    request.Login,
		Password: generateHashString(request.Password),
		FullName: request.FullName,
		IsAdmin:  request.IsAdmin,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		logrus.Error("error creating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("user registration failed"))
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{
		Status:  "success",
		Message: "user registered",
		Data: dto.UserResponse{
			ID:       user.ID,
			Login:    user.Login,
			FullName: user.FullName,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Store.GetUserByLogin(request.Login)
	if err != nil || user.Password != generateHashString(request.Password) {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid login or password"))
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Login:    user.Login,
			FullName: user.FullName,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	// Удаление префикса "Bearer "
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Парсинг токена для получения TTL
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Блокируем токен до момента его истечения
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 && h.RedisClient != nil {
		err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "logged out",
	})
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
