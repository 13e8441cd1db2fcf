package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с отзывами

// Получить активные отзывы: сначала избранные, затем более новые
func (r *Repository) ListActiveTestimonials(featuredOnly bool) ([]ds.Testimonial, error) {
	q := r.db.Where("is_active = ?", true)
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}

	var testimonials []ds.Testimonial
	err := q.Order("is_featured DESC, created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Получить отзыв по ID без фильтра видимости (для админки)
func (r *Repository) GetTestimonialByID(id uint) (*ds.Testimonial, error) {
	var t ds.Testimonial
	err := r.db.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) CreateTestimonial(t *ds.Testimonial) error {
	return r.db.Create(t).Error
}

func (r *Repository) UpdateTestimonial(id uint, upd TestimonialUpdate) error {
	updates := map[string]interface{}{}
	if upd.ClientName != nil {
		updates["client_name"] = *upd.ClientName
	}
	if upd.ClientCompany != nil {
		updates["client_company"] = *upd.ClientCompany
	}
	if upd.ClientPosition != nil {
		updates["client_position"] = *upd.ClientPosition
	}
	if upd.TestimonialText != nil {
		updates["testimonial_text"] = *upd.TestimonialText
	}
	if upd.Rating != nil {
		updates["rating"] = *upd.Rating
	}
	if upd.IsFeatured != nil {
		updates["is_featured"] = *upd.IsFeatured
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Testimonial{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Обновить имя файла фото клиента (MinIO)
func (r *Repository) UpdateTestimonialImage(id uint, image string) error {
	result := r.db.Model(&ds.Testimonial{}).Where("id = ?", id).Update("client_image", image)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
