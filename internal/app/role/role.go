package role

// Роли пользователей админки
type Role int

const (
	Staff Role = iota // Модерация обращений
	Admin             // Модерация + управление контентом
)

func (r Role) String() string {
	switch r {
	case Staff:
		return "staff"
	case Admin:
		return "admin"
	}
	return "unknown"
}
