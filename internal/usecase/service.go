package usecase

import (
	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Catalog   CatalogService
	Worker    WorkerService
	Booking   BookingService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, log),
		Catalog:   NewCatalogService(repo, config, log),
		Worker:    NewWorkerService(repo, log),
		Booking:   NewBookingService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
