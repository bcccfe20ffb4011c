package response

import (
	"time"

	"awami-saholat/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"order_id"`
	WorkerID      int                  `json:"worker_id"`
	WorkerName    string               `json:"worker_name"`
	ServiceType   string               `json:"service_type"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Hours         int                  `json:"hours"`
	Address       string               `json:"address"`
	Area          string               `json:"area,omitempty"`
	City          string               `json:"city,omitempty"`
	Description   string               `json:"description"`
	CustomerName  string               `json:"customer_name,omitempty"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	CustomerEmail string               `json:"customer_email,omitempty"`
	PricePerHour  float64              `json:"price_per_hour"`
	TotalPrice    float64              `json:"total_price"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// WizardStateResponse adalah state form multi-step plus kandidat worker
// untuk step 2.
type WizardStateResponse struct {
	Step       entity.WizardStep `json:"step"`
	ServiceID  int               `json:"service_id,omitempty"`
	City       string            `json:"city,omitempty"`
	Area       string            `json:"area,omitempty"`
	WorkerID   int               `json:"worker_id,omitempty"`
	Candidates []entity.Worker   `json:"candidates,omitempty"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		OrderID:       b.OrderID,
		WorkerID:      b.WorkerID,
		WorkerName:    b.WorkerName,
		ServiceType:   b.ServiceType,
		Date:          b.Date,
		Time:          b.Time,
		Hours:         b.Hours,
		Address:       b.Address,
		Area:          b.Area,
		City:          b.City,
		Description:   b.Description,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		PricePerHour:  b.PricePerHour,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = BookingToResponse(&bookings[i])
	}
	return out
}
