package entity

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking adalah request customer untuk satu worker.
// TotalPrice dihitung sekali saat create (PricePerHour * Hours), tidak
// pernah di-recompute oleh update.
type Booking struct {
	Base
	OrderID       string        `json:"order_id"`
	WorkerID      int           `json:"worker_id"`
	WorkerName    string        `json:"worker_name"`
	ServiceType   string        `json:"service_type"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Hours         int           `json:"hours"` // 1-8
	Address       string        `json:"address"`
	Area          string        `json:"area"`
	City          string        `json:"city"`
	Description   string        `json:"description"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	CustomerEmail string        `json:"customer_email"`
	PricePerHour  float64       `json:"price_per_hour"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
}
