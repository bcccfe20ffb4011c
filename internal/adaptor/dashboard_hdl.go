package adaptor

import (
	"net/http"

	"awami-saholat/internal/usecase"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Overview handles GET /api/dashboard (protected)
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}
