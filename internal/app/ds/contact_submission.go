package ds

import "time"

// Статусы обращения
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusReplied    = "replied"
	StatusClosed     = "closed"
)

// 3. Таблица обращений с контактной формы
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);default:'new';not null"` // new, in_progress, replied, closed
	IPAddress *string   `gorm:"type:varchar(45)"`                        // Nullable, берётся из запроса
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ValidStatus проверяет, что статус входит в допустимый список
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusReplied, StatusClosed:
		return true
	}
	return false
}
