package adaptor

import (
	"awami-saholat/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Worker    *WorkerHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Catalog:   NewCatalogHandler(service.Catalog, log),
		Worker:    NewWorkerHandler(service.Worker, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
