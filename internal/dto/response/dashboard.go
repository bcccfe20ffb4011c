package response

import (
	"awami-saholat/internal/data/entity"
)

// DashboardResponse adalah summary untuk user yang login.
// TotalSpent diisi untuk customer, Earnings untuk worker - keduanya sum
// TotalPrice atas booking completed.
type DashboardResponse struct {
	Role      entity.UserRole `json:"role"`
	Total     int             `json:"total"`
	Pending   int             `json:"pending"`
	Completed int             `json:"completed"`

	TotalSpent *float64 `json:"total_spent,omitempty"`
	Earnings   *float64 `json:"earnings,omitempty"`

	Bookings []BookingResponse `json:"bookings"`
}
