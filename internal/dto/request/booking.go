package request

// Wizard step 1: service dan location
type WizardServiceRequest struct {
	ServiceID int    `json:"service_id" validate:"required"`
	City      string `json:"city" validate:"required"`
	Area      string `json:"area"`
}

// Wizard step 2: pilih worker dari kandidat
type WizardWorkerRequest struct {
	WorkerID int `json:"worker_id" validate:"required"`
}

// Wizard step 3: detail booking, submit terminal
type ConfirmBookingRequest struct {
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Hours         int    `json:"hours" validate:"required,gte=1,lte=8"`
	Address       string `json:"address" validate:"required"`
	Description   string `json:"description" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

// QuickBookingRequest adalah booking langsung dari worker detail page,
// tanpa lewat wizard. Area/city diambil dari profil worker.
type QuickBookingRequest struct {
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Hours       int    `json:"hours" validate:"required,gte=1,lte=8"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}
