package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с услугами

// Получить все активные услуги в порядке отображения
func (r *Repository) ListActiveServices() ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.
		Where("is_active = ?", true).
		Order("sort_order ASC, title ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// Получить активную услугу по ID. Неактивная запись для публичного
// вызывающего неотличима от несуществующей
func (r *Repository) GetActiveServiceByID(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repository) CreateService(svc *ds.Service) error {
	return r.db.Create(svc).Error
}

func (r *Repository) UpdateService(id uint, upd ServiceUpdate) error {
	updates := map[string]interface{}{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Icon != nil {
		updates["icon"] = *upd.Icon
	}
	if upd.Order != nil {
		updates["sort_order"] = *upd.Order
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Логическое удаление: услуга пропадает из публичной выдачи
func (r *Repository) DeactivateService(id uint) error {
	result := r.db.Model(&ds.Service{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
