package login

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Phone string `json:"phone"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	ID      int64  `json:"id"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// FromDomainUser конвертирует domain модель в HTTP response
func FromDomainUser(user *domain.User) *LoginResponse {
	return &LoginResponse{
		ID:      user.ID,
		Phone:   user.Phone,
		IsAdmin: user.IsAdmin,
	}
}
