package request

// LoginRequest - demo login: semua pasangan email/password non-empty
// diterima, tidak ada credential check.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=customer worker"`
}

type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	UserType        string `json:"user_type" validate:"required,oneof=customer worker"`

	// Worker-only fields
	ServiceType string `json:"service_type,omitempty"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area,omitempty"`
}
