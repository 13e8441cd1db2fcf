package handler

import (
	"backend/internal/app/dto"
	"backend/internal/app/notify"
	"backend/internal/app/repository"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler содержит обработчики REST API
type Handler struct {
	Store       repository.Store
	MinIOClient *storage.MinIOClient
	Notifier    notify.Notifier
	AuthHandler *AuthHandler
}

func NewHandler(store repository.Store, minioClient *storage.MinIOClient, notifier notify.Notifier, authHandler *AuthHandler) *Handler {
	return &Handler{
		Store:       store,
		MinIOClient: minioClient,
		Notifier:    notifier,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// storeError логирует неожиданную ошибку хранилища и отвечает 500
// без внутренних подробностей
func (h *Handler) storeError(c *gin.Context, err error) {
	logrus.Error("store error: ", err)
	h.errorResponse(c, 500, "internal server error")
}
