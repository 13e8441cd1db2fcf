package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) testimonialToDTO(t ds.Testimonial) dto.TestimonialResponse {
	resp := dto.TestimonialResponse{
		ID:              t.ID,
		ClientName:      t.ClientName,
		ClientCompany:   t.ClientCompany,
		ClientPosition:  t.ClientPosition,
		TestimonialText: t.TestimonialText,
		Rating:          t.Rating,
		IsFeatured:      t.IsFeatured,
		CreatedAt:       t.CreatedAt,
	}

	// Публично отдаём временную ссылку, а не имя файла в бакете
	if t.ClientImage != nil && *t.ClientImage != "" {
		if h.MinIOClient != nil {
			url, err := h.MinIOClient.GetFileURL(*t.ClientImage)
			if err != nil {
				logrus.Warnf("cannot presign image %s: %v", *t.ClientImage, err)
			} else {
				resp.ClientImageURL = url
			}
		} else {
			resp.ClientImageURL = *t.ClientImage
		}
	}

	return resp
}

func (h *Handler) listTestimonials(c *gin.Context, featuredOnly bool) {
	testimonials, err := h.Store.ListActiveTestimonials(featuredOnly)
	if err != nil {
		h.storeError(c, err)
		return
	}

	dtoTestimonials := make([]dto.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		dtoTestimonials[i] = h.testimonialToDTO(t)
	}

	c.JSON(http.StatusOK, dto.TestimonialListResponse{
		Testimonials: dtoTestimonials,
		Total:        len(dtoTestimonials),
	})
}

// GetTestimonials получает список отзывов
// @Summary Список активных отзывов
// @Description Возвращает активные отзывы: сначала избранные, затем более новые
// @Tags Testimonials
// @Produce json
// @Success 200 {object} dto.TestimonialListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/testimonials [get]
func (h *Handler) GetTestimonials(c *gin.Context) {
	h.listTestimonials(c, false)
}

// GetFeaturedTestimonials получает избранные отзывы
// @Summary Список избранных отзывов
// @Description Возвращает только активные избранные отзывы
// @Tags Testimonials
// @Produce json
// @Success 200 {object} dto.TestimonialListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/testimonials/featured [get]
func (h *Handler) GetFeaturedTestimonials(c *gin.Context) {
	h.listTestimonials(c, true)
}

// CreateTestimonial создает отзыв
// @Summary Создание отзыва
// @Description Создает новый отзыв клиента (только для администраторов)
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTestimonialRequest true "Данные отзыва"
// @Success 201 {object} dto.TestimonialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/testimonials [post]
func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	testimonial := ds.Testimonial{
		ClientName:      req.ClientName,
		ClientCompany:   req.ClientCompany,
		ClientPosition:  req.ClientPosition,
		TestimonialText: req.TestimonialText,
		Rating:          req.Rating,
		IsFeatured:      req.IsFeatured,
		IsActive:        true,
	}
	if err := h.Store.CreateTestimonial(&testimonial); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.testimonialToDTO(testimonial))
}

// UpdateTestimonial обновляет отзыв
// @Summary Обновление отзыва
// @Description Обновляет только переданные поля отзыва (только для администраторов)
// @Tags Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID отзыва"
// @Param request body dto.UpdateTestimonialRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/testimonials/{id} [put]
func (h *Handler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "testimonial not found")
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	upd := repository.TestimonialUpdate{
		ClientName:      req.ClientName,
		ClientCompany:   req.ClientCompany,
		ClientPosition:  req.ClientPosition,
		TestimonialText: req.TestimonialText,
		Rating:          req.Rating,
		IsFeatured:      req.IsFeatured,
		IsActive:        req.IsActive,
	}
	err = h.Store.UpdateTestimonial(uint(id), upd)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "testimonial not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "testimonial updated", nil)
}

// UploadTestimonialImage загружает фото клиента
// @Summary Загрузка фото клиента
// @Description Загружает фото клиента для отзыва в MinIO (только для администраторов)
// @Tags Testimonials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID отзыва"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/testimonials/{id}/image [post]
func (h *Handler) UploadTestimonialImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusNotFound, "testimonial not found")
		return
	}

	testimonial, err := h.Store.GetTestimonialByID(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "testimonial not found")
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "image storage is not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "image file is missing")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "cannot read uploaded file")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "cannot read uploaded file")
		return
	}

	// Удаляем старое фото из MinIO (если было)
	if testimonial.ClientImage != nil && *testimonial.ClientImage != "" {
		if err := h.MinIOClient.DeleteFile(*testimonial.ClientImage); err != nil {
			logrus.Warnf("failed to delete old image %s: %v", *testimonial.ClientImage, err)
		}
	}

	imageName, err := h.MinIOClient.UploadFile(fileData, file.Filename)
	if err != nil {
		logrus.Error("error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "image upload failed")
		return
	}

	if err := h.Store.UpdateTestimonialImage(uint(id), imageName); err != nil {
		h.storeError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "image uploaded", gin.H{
		"image": imageName,
	})
}
