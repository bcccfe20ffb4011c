package usecase

import (
	"context"
	"fmt"
	"time"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/request"
	"awami-saholat/internal/dto/response"
	"awami-saholat/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Multi-step wizard: ServiceAndLocation -> WorkerSelection -> Details
	WizardState(ctx context.Context) (*response.WizardStateResponse, error)
	SelectService(ctx context.Context, req *request.WizardServiceRequest) (*response.WizardStateResponse, error)
	SelectWorker(ctx context.Context, req *request.WizardWorkerRequest) (*response.WizardStateResponse, error)
	Back(ctx context.Context) (*response.WizardStateResponse, error)
	Confirm(ctx context.Context, req *request.ConfirmBookingRequest) (*response.BookingResponse, error)

	// Quick booking dari worker detail page
	QuickBook(ctx context.Context, workerID int, req *request.QuickBookingRequest) (*response.BookingResponse, error)

	// Status patch; no-op kalau id tidak dikenal
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) WizardState(ctx context.Context) (*response.WizardStateResponse, error) {
	return s.wizardResponse(s.repo.Session.Wizard()), nil
}

// SelectService adalah transisi step 1 -> 2. Guard: service dan city
// non-empty. Mengganti filter juga me-revalidasi worker yang sudah
// terpilih sebelumnya; pilihan yang tidak ada lagi di kandidat dihapus.
func (s *bookingService) SelectService(ctx context.Context, req *request.WizardServiceRequest) (*response.WizardStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Wizard step 1 validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, ok := s.repo.Catalog.ServiceByID(req.ServiceID); !ok {
		return nil, fmt.Errorf("service category %d not found", req.ServiceID)
	}

	state := s.repo.Session.Wizard()
	state.ServiceID = req.ServiceID
	state.City = req.City
	state.Area = req.Area
	state.Step = entity.StepWorkerSelection

	// Stale selection check setelah back-navigation + perubahan filter
	if state.WorkerID != 0 && !s.inCandidates(state.WorkerID, state.ServiceID, state.City) {
		s.log.Debug("Clearing stale worker selection",
			zap.Int("worker_id", state.WorkerID))
		state.WorkerID = 0
	}

	s.repo.Session.SetWizard(state)
	s.repo.Session.SetSelectedCity(req.City)

	return s.wizardResponse(state), nil
}

// SelectWorker adalah transisi step 2 -> 3. Guard: worker harus ada di
// kandidat hasil filter step 1; daftar kosong memblokir transisi apapun
// inputnya.
func (s *bookingService) SelectWorker(ctx context.Context, req *request.WizardWorkerRequest) (*response.WizardStateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Wizard step 2 validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	state := s.repo.Session.Wizard()
	if state.Step < entity.StepWorkerSelection {
		return nil, fmt.Errorf("cannot select a worker before choosing service and location")
	}

	candidates := s.repo.Catalog.WizardCandidates(state.ServiceID, state.City)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no workers available for selected criteria")
	}

	found := false
	for _, w := range candidates {
		if w.ID == req.WorkerID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("worker %d is not available for the selected service and city", req.WorkerID)
	}

	state.WorkerID = req.WorkerID
	state.Step = entity.StepDetails
	s.repo.Session.SetWizard(state)

	return s.wizardResponse(state), nil
}

// Back mundur satu step. Di step 1 tetap di tempat; selections tidak
// dihapus saat mundur.
func (s *bookingService) Back(ctx context.Context) (*response.WizardStateResponse, error) {
	state := s.repo.Session.Wizard()
	if state.Step > entity.StepServiceLocation {
		state.Step--
		s.repo.Session.SetWizard(state)
	}
	return s.wizardResponse(state), nil
}

// Confirm adalah submit terminal di step 3. Gate (bukan error): harus
// login sebagai customer - wizard state dipertahankan supaya form tidak
// hilang setelah redirect ke login.
func (s *bookingService) Confirm(ctx context.Context, req *request.ConfirmBookingRequest) (*response.BookingResponse, error) {
	state := s.repo.Session.Wizard()
	if state.Step != entity.StepDetails {
		return nil, fmt.Errorf("cannot confirm before completing worker selection")
	}

	_, role, ok := s.repo.Session.Current()
	if !ok || role != entity.RoleCustomer {
		return nil, fmt.Errorf("login required as a customer to book a service")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Revalidasi worker terhadap kandidat saat ini
	if state.WorkerID == 0 || !s.inCandidates(state.WorkerID, state.ServiceID, state.City) {
		return nil, fmt.Errorf("selected worker is no longer available, please choose again")
	}

	worker, ok := s.repo.Catalog.WorkerByID(state.WorkerID)
	if !ok {
		return nil, fmt.Errorf("worker %d not found", state.WorkerID)
	}

	booking := s.stampBooking(worker, req.Date, req.Time, req.Hours,
		req.Address, state.Area, state.City, req.Description,
		req.CustomerName, req.CustomerPhone, req.CustomerEmail)

	s.repo.Booking.Add(booking)
	s.repo.Session.ResetWizard()

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Int("worker_id", worker.ID),
		zap.Float64("total_price", booking.TotalPrice))

	resp := response.BookingToResponse(&booking)
	return &resp, nil
}

func (s *bookingService) QuickBook(ctx context.Context, workerID int, req *request.QuickBookingRequest) (*response.BookingResponse, error) {
	user, role, ok := s.repo.Session.Current()
	if !ok || role != entity.RoleCustomer {
		return nil, fmt.Errorf("login required as a customer to book a service")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quick booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	worker, ok := s.repo.Catalog.WorkerByID(workerID)
	if !ok {
		return nil, fmt.Errorf("worker %d not found", workerID)
	}

	booking := s.stampBooking(worker, req.Date, req.Time, req.Hours,
		req.Address, worker.Area, worker.City, req.Description,
		user.Name, user.Phone, user.Email)

	s.repo.Booking.Add(booking)

	s.log.Info("Quick booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("worker_id", worker.ID),
		zap.Float64("total_price", booking.TotalPrice))

	resp := response.BookingToResponse(&booking)
	return &resp, nil
}

// UpdateBooking applies a status patch. Id yang tidak dikenal adalah
// no-op yang disengaja, bukan error - daftar booking tidak berubah.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking id %s: %w", bookingID, err)
	}

	status := entity.BookingStatus(req.Status)
	if !s.repo.Booking.Update(id, repository.BookingPatch{Status: &status}) {
		s.log.Warn("Update for unknown booking ignored", zap.String("booking_id", bookingID))
	}
	return nil
}

// stampBooking computes TotalPrice sekali dan memberi id + order ref.
func (s *bookingService) stampBooking(worker entity.Worker, date, timeOfDay string, hours int,
	address, area, city, description, customerName, customerPhone, customerEmail string) entity.Booking {

	return entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OrderID:       utils.GenerateOrderID(),
		WorkerID:      worker.ID,
		WorkerName:    worker.Name,
		ServiceType:   worker.ServiceType,
		Date:          date,
		Time:          timeOfDay,
		Hours:         hours,
		Address:       address,
		Area:          area,
		City:          city,
		Description:   description,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		CustomerEmail: customerEmail,
		PricePerHour:  worker.PricePerHour,
		TotalPrice:    worker.PricePerHour * float64(hours),
		Status:        entity.BookingStatusPending,
	}
}

func (s *bookingService) inCandidates(workerID, serviceID int, city string) bool {
	for _, w := range s.repo.Catalog.WizardCandidates(serviceID, city) {
		if w.ID == workerID {
			return true
		}
	}
	return false
}

func (s *bookingService) wizardResponse(state entity.WizardState) *response.WizardStateResponse {
	resp := &response.WizardStateResponse{
		Step:      state.Step,
		ServiceID: state.ServiceID,
		City:      state.City,
		Area:      state.Area,
		WorkerID:  state.WorkerID,
	}
	if state.Step == entity.StepWorkerSelection {
		resp.Candidates = s.repo.Catalog.WizardCandidates(state.ServiceID, state.City)
	}
	return resp
}
