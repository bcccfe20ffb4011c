package wire

import (
	"awami-saholat/internal/adaptor"
	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== WIZARD ROUTES (public) ====================
	// Wizard bisa diisi tanpa login; gating customer baru terjadi di
	// confirm, dengan state dipertahankan untuk redirect ke login.
	r.Route("/api/booking/wizard", func(r chi.Router) {
		r.Get("/", bookingHandler.WizardState)
		r.Post("/service", bookingHandler.SelectService)
		r.Post("/worker", bookingHandler.SelectWorker)
		r.Post("/back", bookingHandler.Back)
		r.Post("/confirm", bookingHandler.Confirm)
	})

	// ==================== PROTECTED ROUTES ====================
	// PUT /api/bookings/{id} - status patch, butuh login
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(repo.Session, log))
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)
	})
}
