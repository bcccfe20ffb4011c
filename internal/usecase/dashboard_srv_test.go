package usecase

import (
	"context"
	"testing"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedDashboardBookings(repo *repository.Repository) {
	add := func(status entity.BookingStatus, total float64) {
		repo.Booking.Add(entity.Booking{
			Base:       entity.Base{ID: uuid.New()},
			WorkerID:   2,
			Status:     status,
			TotalPrice: total,
		})
	}
	add(entity.BookingStatusPending, 1800)
	add(entity.BookingStatusCompleted, 5400)
	add(entity.BookingStatusCompleted, 3000)
	add(entity.BookingStatusCancelled, 7200)
}

func TestDashboardRequiresLogin(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewDashboardService(repo, zap.NewNop())

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login required")
}

func TestDashboardCustomerSkipsCancelled(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewDashboardService(repo, zap.NewNop())
	loginCustomer(t, repo)
	seedDashboardBookings(repo)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.Equal(t, 3, resp.Total, "cancelled tidak dihitung")
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 2, resp.Completed)
	require.NotNil(t, resp.TotalSpent)
	assert.InDelta(t, 8400, *resp.TotalSpent, 0.001)
	assert.Nil(t, resp.Earnings)

	// Full list tetap dikembalikan, termasuk yang cancelled
	assert.Len(t, resp.Bookings, 4)
}

func TestDashboardWorkerCountsFullList(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewDashboardService(repo, zap.NewNop())
	repo.Session.SetIdentity(&entity.User{
		Name: "Ahmed Raza", ServiceType: "Electrician", City: "Islamabad",
	}, entity.RoleWorker)
	seedDashboardBookings(repo)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleWorker, resp.Role)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 2, resp.Completed)
	require.NotNil(t, resp.Earnings)
	assert.InDelta(t, 8400, *resp.Earnings, 0.001)
	assert.Nil(t, resp.TotalSpent)
}

func TestDashboardEmptySession(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc := NewDashboardService(repo, zap.NewNop())
	loginCustomer(t, repo)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.Pending)
	assert.Zero(t, resp.Completed)
	require.NotNil(t, resp.TotalSpent)
	assert.Zero(t, *resp.TotalSpent)
	assert.Empty(t, resp.Bookings)
}
