package adaptor

import (
	"net/http"

	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/usecase"
	"awami-saholat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WorkerHandler struct {
	service usecase.WorkerService
	log     *zap.Logger
}

func NewWorkerHandler(service usecase.WorkerService, log *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		service: service,
		log:     log.With(zap.String("handler", "worker")),
	}
}

// List handles GET /api/workers
// Query params: city, service, min_rating, max_price, search - semua
// opsional, default sama dengan reset filter.
func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	defaults := repository.DefaultWorkerFilter()
	query := r.URL.Query()

	filter := repository.WorkerFilter{
		City:      defaults.City,
		ServiceID: utils.ParseInt(query.Get("service"), defaults.ServiceID),
		MinRating: utils.ParseFloat(query.Get("min_rating"), defaults.MinRating),
		MaxPrice:  utils.ParseFloat(query.Get("max_price"), defaults.MaxPrice),
		Search:    query.Get("search"),
	}
	if city := query.Get("city"); city != "" {
		filter.City = city
	}

	workers, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list workers")
		return
	}

	utils.ResponseSuccess(w, "success", workers)
}

// Detail handles GET /api/workers/{id}
func (h *WorkerHandler) Detail(w http.ResponseWriter, r *http.Request) {
	workerID := utils.ParseInt(chi.URLParam(r, "id"), 0)
	if workerID == 0 {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	detail, err := h.service.Detail(r.Context(), workerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get worker detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}
