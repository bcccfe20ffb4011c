package wire

import (
	"awami-saholat/internal/adaptor"
	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/dashboard - summary per role, butuh login
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(repo.Session, log))
		r.Get("/api/dashboard", dashboardHandler.Overview)
	})
}
