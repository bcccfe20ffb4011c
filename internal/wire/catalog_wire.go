package wire

import (
	"awami-saholat/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/home - landing content + katalog ringkas
	r.Get("/api/home", catalogHandler.Home)

	// GET /api/services - kategori + statistik per kategori
	r.Get("/api/services", catalogHandler.Services)

	// GET /api/cities - daftar city yang dilayani
	r.Get("/api/cities", catalogHandler.Cities)

	// GET /api/content/* - static pages
	r.Get("/api/content/about", catalogHandler.About)
	r.Get("/api/content/contact", catalogHandler.Contact)

	// Session-wide selection state (active city + service filter)
	r.Get("/api/session/preferences", catalogHandler.Preferences)
	r.Put("/api/session/preferences", catalogHandler.UpdatePreferences)
}
