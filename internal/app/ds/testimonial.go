package ds

import "time"

// 2. Таблица отзывов клиентов
type Testimonial struct {
	ID              uint      `gorm:"primaryKey"`
	ClientName      string    `gorm:"type:varchar(100);not null"`
	ClientCompany   string    `gorm:"type:varchar(100)"`
	ClientPosition  string    `gorm:"type:varchar(100)"`
	TestimonialText string    `gorm:"type:text;not null"`
	Rating          int       `gorm:"type:int;default:5;not null"` // 1-5
	ClientImage     *string   `gorm:"type:varchar(255)"`           // Nullable, имя файла в MinIO
	IsFeatured      bool      `gorm:"type:boolean;default:false;not null"`
	IsActive        bool      `gorm:"type:boolean;default:true;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}
