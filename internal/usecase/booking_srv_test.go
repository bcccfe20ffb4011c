package usecase

import (
	"context"
	"testing"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loginCustomer(t *testing.T, repo *repository.Repository) {
	t.Helper()
	repo.Session.SetIdentity(&entity.User{
		Name:  "Hassan",
		Email: "hassan@example.com",
		Phone: "+92 300 1234567",
	}, entity.RoleCustomer)
}

func validDetails() *request.ConfirmBookingRequest {
	return &request.ConfirmBookingRequest{
		Date:          "2026-09-10",
		Time:          "14:00",
		Hours:         3,
		Address:       "House 12, Street 4",
		Description:   "UPS wiring repair",
		CustomerName:  "Hassan",
		CustomerPhone: "+92 300 1234567",
		CustomerEmail: "hassan@example.com",
	}
}

func TestWizardHappyPathComputesTotalPrice(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)
	ctx := context.Background()

	state, err := svc.SelectService(ctx, &request.WizardServiceRequest{
		ServiceID: 2, City: "Islamabad", Area: "F-7",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StepWorkerSelection, state.Step)
	require.NotEmpty(t, state.Candidates)

	state, err = svc.SelectWorker(ctx, &request.WizardWorkerRequest{WorkerID: state.Candidates[0].ID})
	require.NoError(t, err)
	assert.Equal(t, entity.StepDetails, state.Step)

	booking, err := svc.Confirm(ctx, validDetails())
	require.NoError(t, err)

	// Invariant: TotalPrice == PricePerHour * Hours saat create
	assert.InDelta(t, booking.PricePerHour*float64(booking.Hours), booking.TotalPrice, 0.001)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.NotEmpty(t, booking.OrderID)

	// Booking masuk ke session list, wizard di-reset
	require.Len(t, repo.Booking.List(), 1)
	assert.Equal(t, entity.StepServiceLocation, repo.Session.Wizard().Step)
}

func TestWizardStepOneRequiresServiceAndCity(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.SelectService(context.Background(), &request.WizardServiceRequest{City: "Islamabad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = svc.SelectService(context.Background(), &request.WizardServiceRequest{ServiceID: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// Masih di step 1
	assert.Equal(t, entity.StepServiceLocation, repo.Session.Wizard().Step)
}

func TestWizardZeroCandidatesBlocksTransition(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	// Tidak ada AC technician di Islamabad dalam seed
	state, err := svc.SelectService(ctx, &request.WizardServiceRequest{ServiceID: 5, City: "Islamabad"})
	require.NoError(t, err)
	assert.Empty(t, state.Candidates)

	// 2 -> 3 terblokir apapun worker id-nya
	for _, id := range []int{6, 9, 1} {
		_, err = svc.SelectWorker(ctx, &request.WizardWorkerRequest{WorkerID: id})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no workers available")
	}
	assert.Equal(t, entity.StepWorkerSelection, repo.Session.Wizard().Step)
}

func TestWizardRejectsWorkerOutsideCandidates(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SelectService(ctx, &request.WizardServiceRequest{ServiceID: 2, City: "Islamabad"})
	require.NoError(t, err)

	// Worker 3 adalah electrician Lahore - bukan kandidat
	_, err = svc.SelectWorker(ctx, &request.WizardWorkerRequest{WorkerID: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestWizardBackAndFilterChangeClearsStaleSelection(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SelectService(ctx, &request.WizardServiceRequest{ServiceID: 2, City: "Islamabad"})
	require.NoError(t, err)
	_, err = svc.SelectWorker(ctx, &request.WizardWorkerRequest{WorkerID: 2})
	require.NoError(t, err)

	// Mundur ke step 1, ganti city - worker 2 tidak lagi valid
	_, err = svc.Back(ctx)
	require.NoError(t, err)
	_, err = svc.Back(ctx)
	require.NoError(t, err)

	state, err := svc.SelectService(ctx, &request.WizardServiceRequest{ServiceID: 2, City: "Lahore"})
	require.NoError(t, err)

	assert.Zero(t, state.WorkerID, "stale selection harus dihapus")
	assert.Equal(t, entity.StepWorkerSelection, state.Step)
}

func TestWizardBackStopsAtStepOne(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	state, err := svc.Back(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.StepServiceLocation, state.Step)
}

func TestConfirmGatedWithoutCustomerLogin(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SelectService(ctx, &request.WizardServiceRequest{ServiceID: 2, City: "Islamabad"})
	require.NoError(t, err)
	_, err = svc.SelectWorker(ctx, &request.WizardWorkerRequest{WorkerID: 2})
	require.NoError(t, err)

	// Tanpa login: gating, bukan fault - wizard state dipertahankan
	_, err = svc.Confirm(ctx, validDetails())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login required")

	state := repo.Session.Wizard()
	assert.Equal(t, entity.StepDetails, state.Step)
	assert.Equal(t, 2, state.WorkerID)
	assert.Empty(t, repo.Booking.List())

	// Login sebagai worker juga terblokir
	repo.Session.SetIdentity(&entity.User{Name: "Imran"}, entity.RoleWorker)
	_, err = svc.Confirm(ctx, validDetails())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login required")
}

func TestConfirmBeforeDetailsStepIsBlocked(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)

	_, err := svc.Confirm(context.Background(), validDetails())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot confirm")
}

func TestQuickBookUsesWorkerLocation(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)

	booking, err := svc.QuickBook(context.Background(), 3, &request.QuickBookingRequest{
		Date:        "2026-09-12",
		Time:        "11:00",
		Hours:       2,
		Address:     "45-B Gulberg III",
		Description: "Tripping breaker",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bilal Hussain", booking.WorkerName)
	assert.Equal(t, "Lahore", booking.City)
	assert.Equal(t, "Gulberg", booking.Area)
	assert.InDelta(t, 3000, booking.TotalPrice, 0.001) // 1500 * 2
	assert.Equal(t, "Hassan", booking.CustomerName)
}

func TestQuickBookUnknownWorker(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)

	_, err := svc.QuickBook(context.Background(), 9999, &request.QuickBookingRequest{
		Date: "2026-09-12", Time: "11:00", Hours: 2,
		Address: "x", Description: "y",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateBookingStatusOnly(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)

	booking, err := svc.QuickBook(context.Background(), 2, &request.QuickBookingRequest{
		Date: "2026-09-12", Time: "11:00", Hours: 4,
		Address: "House 12", Description: "Wiring",
	})
	require.NoError(t, err)

	err = svc.UpdateBooking(context.Background(), booking.ID, &request.UpdateBookingRequest{Status: "completed"})
	require.NoError(t, err)

	got := repo.Booking.List()[0]
	assert.Equal(t, entity.BookingStatusCompleted, got.Status)
	// TotalPrice tidak di-recompute
	assert.InDelta(t, booking.TotalPrice, got.TotalPrice, 0.001)
	assert.Equal(t, booking.Hours, got.Hours)
}

func TestUpdateBookingUnknownIDIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	loginCustomer(t, repo)

	_, err := svc.QuickBook(context.Background(), 2, &request.QuickBookingRequest{
		Date: "2026-09-12", Time: "11:00", Hours: 4,
		Address: "House 12", Description: "Wiring",
	})
	require.NoError(t, err)

	before := repo.Booking.List()

	err = svc.UpdateBooking(context.Background(),
		"6b1e6a4e-0000-0000-0000-000000000000",
		&request.UpdateBookingRequest{Status: "cancelled"})
	require.NoError(t, err)

	after := repo.Booking.List()
	require.Len(t, after, len(before))
	assert.Equal(t, before, after)
}

func TestUpdateBookingInvalidInput(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	err := svc.UpdateBooking(context.Background(), "not-a-uuid",
		&request.UpdateBookingRequest{Status: "completed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")

	err = svc.UpdateBooking(context.Background(), "not-a-uuid",
		&request.UpdateBookingRequest{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
