package middleware

import (
	"net/http"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

// RequireUser adalah gating, bukan autentikasi: route di baliknya hanya
// butuh ada identity di session store. Tanpa identity, response 401
// mengarahkan user ke login - bukan fault.
func RequireUser(session repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, role, ok := session.Current()
			if !ok {
				logger.Debug("Blocked unauthenticated request",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Please login to continue")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCustomer gates routes yang hanya untuk role customer.
func RequireCustomer(session repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, role, ok := session.Current()
			if !ok || role != entity.RoleCustomer {
				logger.Debug("Blocked non-customer request",
					zap.String("path", r.URL.Path),
					zap.String("role", string(role)))
				utils.ResponseUnauthorized(w, "Please login as a customer to book a service")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
