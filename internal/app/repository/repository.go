package repository

import (
	"errors"
	"fmt"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound - запись отсутствует либо скрыта правилами видимости
var ErrNotFound = errors.New("record not found")

// ContactFilter - явный предикат для выборки обращений.
// Оба фильтра независимы и комбинируются через AND.
type ContactFilter struct {
	Status string // точное совпадение статуса
	Search string // подстрока по name/email/message без учёта регистра
}

// ServiceUpdate - частичное обновление услуги, nil-поля не трогаем
type ServiceUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	Order       *int
	IsActive    *bool
}

// TestimonialUpdate - частичное обновление отзыва
type TestimonialUpdate struct {
	ClientName      *string
	ClientCompany   *string
	ClientPosition  *string
	TestimonialText *string
	Rating          *int
	IsFeatured      *bool
	IsActive        *bool
}

// Store - операции хранилища, используемые обработчиками.
// Боевая реализация - Repository (gorm/postgres), для юнит-тестов - MemoryStore.
type Store interface {
	ListActiveServices() ([]ds.Service, error)
	GetActiveServiceByID(id uint) (*ds.Service, error)
	CreateService(svc *ds.Service) error
	UpdateService(id uint, upd ServiceUpdate) error
	DeactivateService(id uint) error

	ListActiveTestimonials(featuredOnly bool) ([]ds.Testimonial, error)
	GetTestimonialByID(id uint) (*ds.Testimonial, error)
	CreateTestimonial(t *ds.Testimonial) error
	UpdateTestimonial(id uint, upd TestimonialUpdate) error
	UpdateTestimonialImage(id uint, image string) error

	CreateSubmission(sub *ds.ContactSubmission) error
	ListSubmissions(filter ContactFilter) ([]ds.ContactSubmission, error)
	GetSubmissionByID(id uint) (*ds.ContactSubmission, error)
	UpdateSubmissionStatus(id uint, status string) (*ds.ContactSubmission, error)

	GetUserByID(id uint) (*ds.User, error)
	GetUserByLogin(login string) (*ds.User, error)
	UserExistsByLogin(login string) (bool, error)
	CreateUser(user *ds.User) error
}

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Service{},
		&ds.Testimonial{},
		&ds.ContactSubmission{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
