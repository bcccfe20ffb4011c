package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
)

// User adalah identity untuk session yang sedang login.
// Tidak ada password yang disimpan - login bersifat demo (credential-free).
type User struct {
	Base
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Worker-only profile fields, empty untuk customer
	ServiceType string `json:"service_type,omitempty"`
	City        string `json:"city,omitempty"`
	Area        string `json:"area,omitempty"`
}
