package handler

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var emailValidator = validator.New()

const thankYouMessage = "Thank you for your message. We will get back to you soon!"

// validateSubmission нормализует payload и собирает ошибки по полям.
// Правила проверяются независимо, каждая ошибка привязана к своему полю
func validateSubmission(req *dto.ContactCreateRequest) map[string][]string {
	fieldErrors := map[string][]string{}

	req.Name = strings.TrimSpace(req.Name)
	if len([]rune(req.Name)) < 2 {
		fieldErrors["name"] = append(fieldErrors["name"], "Name must be at least 2 characters long.")
	}

	// Email приводим к нижнему регистру до сохранения
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "This field is required.")
	} else if emailValidator.Var(req.Email, "email") != nil {
		fieldErrors["email"] = append(fieldErrors["email"], "Enter a valid email address.")
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		fieldErrors["message"] = append(fieldErrors["message"], "This field is required.")
	} else if len([]rune(req.Message)) < 10 {
		fieldErrors["message"] = append(fieldErrors["message"], "Message must be at least 10 characters long.")
	}

	// Телефон опционален и не валидируется

	return fieldErrors
}

// clientIP определяет адрес клиента: первая запись X-Forwarded-For,
// иначе адрес соединения. Клиентом поле не задаётся никогда
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// CreateSubmission принимает обращение с публичной контактной формы
// @Summary Отправка контактной формы
// @Description Валидирует и сохраняет обращение; статус всегда new
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactCreateRequest true "Данные обращения"
// @Success 201 {object} dto.ContactCreateResponse
// @Failure 400 {object} map[string][]string
// @Router /api/contact [post]
func (h *Handler) CreateSubmission(c *gin.Context) {
	var req dto.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Ничего не пишем, пока все проверки не пройдены
	if fieldErrors := validateSubmission(&req); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	ip := clientIP(c)
	sub := ds.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    ds.StatusNew, // Принудительно, что бы ни прислал клиент
		UserAgent: c.GetHeader("User-Agent"),
	}
	if ip != "" {
		sub.IPAddress = &ip
	}

	if err := h.Store.CreateSubmission(&sub); err != nil {
		h.storeError(c, err)
		return
	}

	// Канал уведомлений опционален, его сбой не проваливает запрос
	if h.Notifier != nil {
		if err := h.Notifier.NotifySubmission(c.Request.Context(), &sub); err != nil {
			logrus.Warnf("submission notification failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, dto.ContactCreateResponse{
		Message: thankYouMessage,
		ID:      sub.ID,
	})
}

func submissionToDTO(sub ds.ContactSubmission) dto.SubmissionResponse {
	resp := dto.SubmissionResponse{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Message,
		Status:    sub.Status,
		UserAgent: sub.UserAgent,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
	if sub.IPAddress != nil {
		resp.IPAddress = *sub.IPAddress
	}
	return resp
}

// GetSubmissions получает список обращений
// @Summary Список обращений
// @Description Возвращает обращения (новые сверху) с фильтрами status и search;
// @Description оба фильтра независимы и комбинируются через AND
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Точный фильтр по статусу"
// @Param search query string false "Подстрока по имени, email или сообщению"
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/contacts [get]
func (h *Handler) GetSubmissions(c *gin.Context) {
	filter := repository.ContactFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	subs, err := h.Store.ListSubmissions(filter)
	if err != nil {
		h.storeError(c, err)
		return
	}

	dtoSubs := make([]dto.SubmissionResponse, len(subs))
	for i, sub := range subs {
		dtoSubs[i] = submissionToDTO(sub)
	}

	c.JSON(http.StatusOK, dto.SubmissionListResponse{
		Submissions: dtoSubs,
		Total:       len(dtoSubs),
	})
}

// GetSubmission получает одно обращение
// @Summary Получение обращения по ID
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID обращения"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/contacts/{id} [get]
func (h *Handler) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "submission not found")
		return
	}

	sub, err := h.Store.GetSubmissionByID(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "submission not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissionToDTO(*sub))
}

// UpdateSubmission частично обновляет обращение
// @Summary Обновление обращения
// @Description Применяет только переданные поля; мутабелен только статус.
// @Description created_at, ip_address и user_agent клиенту недоступны
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID обращения"
// @Param request body dto.UpdateSubmissionRequest true "Данные для обновления"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/contacts/{id} [patch]
func (h *Handler) UpdateSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "submission not found")
		return
	}

	var req dto.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// Пустой PATCH валиден - просто возвращаем текущую запись
	if req.Status == nil {
		sub, err := h.Store.GetSubmissionByID(uint(id))
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(c, http.StatusNotFound, "submission not found")
			return
		}
		if err != nil {
			h.storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, submissionToDTO(*sub))
		return
	}

	sub, err := h.Store.UpdateSubmissionStatus(uint(id), *req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "submission not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissionToDTO(*sub))
}
