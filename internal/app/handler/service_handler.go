package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
)

func serviceToDTO(s ds.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Order:       s.SortOrder,
		CreatedAt:   s.CreatedAt,
	}
}

// GetServices получает список услуг
// @Summary Список активных услуг
// @Description Возвращает активные услуги в порядке отображения (order, title)
// @Tags Services
// @Produce json
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.Store.ListActiveServices()
	if err != nil {
		h.storeError(c, err)
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		dtoServices[i] = serviceToDTO(s)
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// GetService получает одну услугу
// @Summary Получение услуги по ID
// @Description Возвращает активную услугу; неактивная отдаёт 404 как несуществующая
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}

	service, err := h.Store.GetActiveServiceByID(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceToDTO(*service))
}

// CreateService создает новую услугу
// @Summary Создание услуги
// @Description Создает новую услугу (только для администраторов)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	service := ds.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.Order,
		IsActive:    true,
	}
	if err := h.Store.CreateService(&service); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serviceToDTO(service))
}

// UpdateService обновляет услугу
// @Summary Обновление услуги
// @Description Обновляет только переданные поля услуги (только для администраторов)
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	upd := repository.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
		IsActive:    req.IsActive,
	}
	err = h.Store.UpdateService(uint(id), upd)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "service updated", nil)
}

// DeleteService логически удаляет услугу
// @Summary Удаление услуги
// @Description Скрывает услугу из публичной выдачи (только для администраторов)
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}

	err = h.Store.DeactivateService(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "service deleted", nil)
}
