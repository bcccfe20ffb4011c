package wire

import (
	"awami-saholat/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// Demo login: tidak ada credential check, semua route public.
	// POST /api/auth/login - replace identity saat ini
	r.Post("/api/auth/login", authHandler.Login)

	// POST /api/auth/signup - buat identity baru lalu login
	r.Post("/api/auth/signup", authHandler.Signup)

	// POST /api/auth/logout - idempotent
	r.Post("/api/auth/logout", authHandler.Logout)

	// GET /api/auth/me - identity yang sedang login
	r.Get("/api/auth/me", authHandler.Me)
}
