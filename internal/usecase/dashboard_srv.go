package usecase

import (
	"context"
	"fmt"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Overview(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

// Overview adalah single-pass reduction atas booking list session,
// bercabang per role. Worker view memakai seluruh list session (tidak
// di-scope per worker id), mempertahankan batasan versi aslinya.
func (s *dashboardService) Overview(ctx context.Context) (*response.DashboardResponse, error) {
	_, role, ok := s.repo.Session.Current()
	if !ok {
		return nil, fmt.Errorf("login required")
	}

	all := s.repo.Booking.List()
	resp := &response.DashboardResponse{
		Role:     role,
		Bookings: response.BookingsToResponse(all),
	}

	if role == entity.RoleCustomer {
		var total, pending, completed int
		var spent float64
		for _, b := range all {
			if b.Status == entity.BookingStatusCancelled {
				continue
			}
			total++
			switch b.Status {
			case entity.BookingStatusPending:
				pending++
			case entity.BookingStatusCompleted:
				completed++
				spent += b.TotalPrice
			}
		}
		resp.Total = total
		resp.Pending = pending
		resp.Completed = completed
		resp.TotalSpent = &spent
		return resp, nil
	}

	var pending, completed int
	var earnings float64
	for _, b := range all {
		switch b.Status {
		case entity.BookingStatusPending:
			pending++
		case entity.BookingStatusCompleted:
			completed++
			earnings += b.TotalPrice
		}
	}
	resp.Total = len(all)
	resp.Pending = pending
	resp.Completed = completed
	resp.Earnings = &earnings
	return resp, nil
}
