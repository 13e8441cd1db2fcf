package handler

import (
	"net/http"
	"time"

	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией и кэшем
func (h *Handler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, cacheMiddleware *middleware.CacheMiddleware, pageTTL time.Duration) {
	api := router.Group("/api")

	// Машиночитаемый индекс эндпоинтов
	api.GET("", h.GetAPIOverview)

	// ============ Услуги (Services) - публичное чтение, CRUD для админов ============
	services := api.Group("/services")
	{
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)

		services.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateService)
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)
	}

	// ============ Отзывы (Testimonials) - списки за страничным кэшем ============
	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", cacheMiddleware.CachePage(pageTTL), h.GetTestimonials)
		testimonials.GET("/featured", cacheMiddleware.CachePage(pageTTL), h.GetFeaturedTestimonials)

		testimonials.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateTestimonial)
		testimonials.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateTestimonial)
		testimonials.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadTestimonialImage)
	}

	// ============ Контактная форма - публичный приём обращений ============
	api.POST("/contact", h.CreateSubmission)

	// ============ Модерация обращений - только для авторизованных ============
	admin := api.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Staff, role.Admin))
	{
		admin.GET("/contacts", h.GetSubmissions)
		admin.GET("/contacts/:id", h.GetSubmission)
		admin.PATCH("/contacts/:id", h.UpdateSubmission)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.LoginUser)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.AuthHandler.LogoutUser)
		auth.POST("/register", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.RegisterUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// GetAPIOverview возвращает индекс доступных эндпоинтов
// @Summary Обзор API
// @Description Машиночитаемый список эндпоинтов сервиса
// @Tags Overview
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api [get]
func (h *Handler) GetAPIOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Services API",
		"endpoints": gin.H{
			"Services": gin.H{
				"List all services": "/api/services/",
				"Get service by ID": "/api/services/{id}/",
			},
			"Testimonials": gin.H{
				"List all testimonials":      "/api/testimonials/",
				"List featured testimonials": "/api/testimonials/featured/",
			},
			"Contact": gin.H{
				"Submit contact form": "/api/contact/ (POST)",
			},
		},
		"documentation": "/swagger/index.html",
	})
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
