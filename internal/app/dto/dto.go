package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Услуги (Services) ============

type ServiceResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"max=50"`
	Order       int    `json:"order" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

// ============ Отзывы (Testimonials) ============

type TestimonialResponse struct {
	ID              uint      `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientCompany   string    `json:"client_company"`
	ClientPosition  string    `json:"client_position"`
	TestimonialText string    `json:"testimonial_text"`
	Rating          int       `json:"rating"`
	ClientImageURL  string    `json:"client_image_url,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	CreatedAt       time.Time `json:"created_at"`
}

type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Total        int                   `json:"total"`
}

type CreateTestimonialRequest struct {
	ClientName      string `json:"client_name" binding:"required,max=100"`
	ClientCompany   string `json:"client_company" binding:"max=100"`
	ClientPosition  string `json:"client_position" binding:"max=100"`
	TestimonialText string `json:"testimonial_text" binding:"required"`
	Rating          int    `json:"rating" binding:"required,gte=1,lte=5"`
	IsFeatured      bool   `json:"is_featured"`
}

type UpdateTestimonialRequest struct {
	ClientName      *string `json:"client_name" binding:"omitempty,max=100"`
	ClientCompany   *string `json:"client_company" binding:"omitempty,max=100"`
	ClientPosition  *string `json:"client_position" binding:"omitempty,max=100"`
	TestimonialText *string `json:"testimonial_text"`
	Rating          *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	IsFeatured      *bool   `json:"is_featured"`
	IsActive        *bool   `json:"is_active"`
}

// ============ Обращения (Contact Submissions) ============

// ContactCreateRequest - входной payload публичной контактной формы.
// Поле status клиенту недоступно: чего нет в структуре, того нет в записи.
type ContactCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactCreateResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

type SubmissionResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
}

// UpdateSubmissionRequest - частичное обновление обращения администратором.
// Мутабелен только статус, остальные поля записи клиент менять не может.
type UpdateSubmissionRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=new in_progress replied closed"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
