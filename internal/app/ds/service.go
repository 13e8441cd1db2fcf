package ds

import "time"

// 1. Таблица услуг - справочная информация для публичной витрины
type Service struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Icon        string    `gorm:"type:varchar(50)"` // CSS-класс иконки (fa-*)
	IsActive    bool      `gorm:"type:boolean;default:true;not null"`
	SortOrder   int       `gorm:"type:int;default:0;not null"` // Порядок отображения
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
