package repository

import (
	"errors"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с обращениями

// Создать обращение. Единственная вставка: частичных записей не бывает,
// все проверки выполняются до вызова
func (r *Repository) CreateSubmission(sub *ds.ContactSubmission) error {
	return r.db.Create(sub).Error
}

// Получить обращения с опциональными фильтрами, новые сверху
func (r *Repository) ListSubmissions(filter ContactFilter) ([]ds.ContactSubmission, error) {
	q := r.db.Model(&ds.ContactSubmission{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR message ILIKE ?", pattern, pattern, pattern)
	}

	var subs []ds.ContactSubmission
	err := q.Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *Repository) GetSubmissionByID(id uint) (*ds.ContactSubmission, error) {
	var sub ds.ContactSubmission
	err := r.db.First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Изменить статус обращения. Единственное поле, которое модератор может
// мутировать; updated_at обновляет gorm
func (r *Repository) UpdateSubmissionStatus(id uint, status string) (*ds.ContactSubmission, error) {
	result := r.db.Model(&ds.ContactSubmission{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetSubmissionByID(id)
}
