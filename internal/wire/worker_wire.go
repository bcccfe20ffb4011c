package wire

import (
	"awami-saholat/internal/adaptor"
	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWorker(
	r chi.Router,
	workerHandler *adaptor.WorkerHandler,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/workers - listing dengan filter engine (query params)
	r.Get("/api/workers", workerHandler.List)

	// GET /api/workers/{id} - profil + reviews
	r.Get("/api/workers/{id}", workerHandler.Detail)

	// ==================== PROTECTED ROUTES ====================
	// POST /api/workers/{id}/book - quick booking dari detail page,
	// hanya untuk customer yang login
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireCustomer(repo.Session, log))
		r.Post("/api/workers/{id}/book", bookingHandler.QuickBook)
	})
}
