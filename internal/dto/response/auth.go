package response

import (
	"awami-saholat/internal/data/entity"
)

type AuthResponse struct {
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Phone  string          `json:"phone"`
	Role   entity.UserRole `json:"role"`

	ServiceType string `json:"service_type,omitempty"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area,omitempty"`
}

// Helper converters
func AuthToResponse(user *entity.User, role entity.UserRole) *AuthResponse {
	return &AuthResponse{
		UserID:      user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        role,
		ServiceType: user.ServiceType,
		City:        user.City,
		Area:        user.Area,
	}
}
