package adaptor

import (
	"encoding/json"
	"net/http"

	"awami-saholat/internal/dto/request"
	"awami-saholat/internal/usecase"
	"awami-saholat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// WizardState handles GET /api/booking/wizard
func (h *BookingHandler) WizardState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.WizardState(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get wizard state")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// SelectService handles POST /api/booking/wizard/service (step 1 -> 2)
func (h *BookingHandler) SelectService(w http.ResponseWriter, r *http.Request) {
	var req request.WizardServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	state, err := h.service.SelectService(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select service")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// SelectWorker handles POST /api/booking/wizard/worker (step 2 -> 3)
func (h *BookingHandler) SelectWorker(w http.ResponseWriter, r *http.Request) {
	var req request.WizardWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	state, err := h.service.SelectWorker(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select worker")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// Back handles POST /api/booking/wizard/back
func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Back(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "wizard back")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// Confirm handles POST /api/booking/wizard/confirm (terminal submit)
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Confirm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "confirm booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// QuickBook handles POST /api/workers/{id}/book (protected, customer)
func (h *BookingHandler) QuickBook(w http.ResponseWriter, r *http.Request) {
	workerID := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if workerID == 0 {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	var req request.QuickBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.QuickBook(r.Context(), workerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quick booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// UpdateBooking handles PUT /api/bookings/{id} (protected)
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateBooking(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
