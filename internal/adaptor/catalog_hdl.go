package adaptor

import (
	"encoding/json"
	"net/http"

	"awami-saholat/internal/dto/request"
	"awami-saholat/internal/usecase"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Home handles GET /api/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get home")
		return
	}

	utils.ResponseSuccess(w, "success", home)
}

// Services handles GET /api/services
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.Services(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// Cities handles GET /api/cities
func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Cities(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get cities")
		return
	}

	utils.ResponseSuccess(w, "success", cities)
}

// About handles GET /api/content/about
func (h *CatalogHandler) About(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.About(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get about")
		return
	}

	utils.ResponseSuccess(w, "success", content)
}

// Contact handles GET /api/content/contact
func (h *CatalogHandler) Contact(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.Contact(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get contact")
		return
	}

	utils.ResponseSuccess(w, "success", content)
}

// Preferences handles GET /api/session/preferences
func (h *CatalogHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.Preferences(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get preferences")
		return
	}

	utils.ResponseSuccess(w, "success", prefs)
}

// UpdatePreferences handles PUT /api/session/preferences
func (h *CatalogHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req request.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update preferences")
		return
	}

	utils.ResponseSuccess(w, "success", prefs)
}
