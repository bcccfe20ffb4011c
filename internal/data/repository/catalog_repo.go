package repository

import (
	"strings"

	"awami-saholat/internal/data/catalog"
	"awami-saholat/internal/data/entity"

	"go.uber.org/zap"
)

// FilterAll adalah nilai "no filter" untuk city dan service.
const FilterAll = "All"

// WorkerFilter adalah predicate set untuk listing page. Semua predicate
// di-AND-kan; zero value berarti tanpa filter (kecuali MaxPrice, lihat
// DefaultWorkerFilter).
type WorkerFilter struct {
	City      string  // FilterAll atau nama city
	ServiceID int     // 0 = semua service
	MinRating float64 // 0.0 - 5.0
	MaxPrice  float64 // Rs per hour
	Search    string  // case-insensitive substring: name, serviceType, area
}

// DefaultWorkerFilter adalah kondisi reset listing page.
func DefaultWorkerFilter() WorkerFilter {
	return WorkerFilter{
		City:      FilterAll,
		ServiceID: 0,
		MinRating: 0,
		MaxPrice:  5000,
		Search:    "",
	}
}

// Matches reports whether worker memenuhi semua predicate aktif.
func (f WorkerFilter) Matches(w entity.Worker) bool {
	if f.City != "" && f.City != FilterAll && w.City != f.City {
		return false
	}
	if f.ServiceID != 0 && w.ServiceID != f.ServiceID {
		return false
	}
	if w.Rating < f.MinRating {
		return false
	}
	if w.PricePerHour > f.MaxPrice {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(w.Name), q) &&
			!strings.Contains(strings.ToLower(w.ServiceType), q) &&
			!strings.Contains(strings.ToLower(w.Area), q) {
			return false
		}
	}
	return true
}

// CatalogRepository adalah read-only access ke seed dataset.
type CatalogRepository interface {
	Services() []entity.ServiceCategory
	ServiceByID(id int) (entity.ServiceCategory, bool)
	Cities() []entity.City
	Workers() []entity.Worker
	WorkerByID(id int) (entity.Worker, bool)
	ReviewsByWorker(workerID int) []entity.Review

	// FilterWorkers returns workers yang lolos semua predicate,
	// dalam insertion order seed (stable, tanpa sort).
	FilterWorkers(filter WorkerFilter) []entity.Worker

	// WizardCandidates returns kandidat step 2 booking wizard:
	// service match AND (city match OR city == "All").
	WizardCandidates(serviceID int, city string) []entity.Worker
}

type catalogRepository struct {
	services []entity.ServiceCategory
	cities   []entity.City
	workers  []entity.Worker
	reviews  []entity.Review
	log      *zap.Logger
}

func NewCatalogRepository(log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		services: catalog.Services(),
		cities:   catalog.Cities(),
		workers:  catalog.Workers(),
		reviews:  catalog.Reviews(),
		log:      log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) Services() []entity.ServiceCategory {
	return r.services
}

func (r *catalogRepository) ServiceByID(id int) (entity.ServiceCategory, bool) {
	for _, s := range r.services {
		if s.ID == id {
			return s, true
		}
	}
	return entity.ServiceCategory{}, false
}

func (r *catalogRepository) Cities() []entity.City {
	return r.cities
}

func (r *catalogRepository) Workers() []entity.Worker {
	return r.workers
}

func (r *catalogRepository) WorkerByID(id int) (entity.Worker, bool) {
	for _, w := range r.workers {
		if w.ID == id {
			return w, true
		}
	}
	return entity.Worker{}, false
}

func (r *catalogRepository) ReviewsByWorker(workerID int) []entity.Review {
	var out []entity.Review
	for _, rev := range r.reviews {
		if rev.WorkerID == workerID {
			out = append(out, rev)
		}
	}
	return out
}

func (r *catalogRepository) FilterWorkers(filter WorkerFilter) []entity.Worker {
	var out []entity.Worker
	for _, w := range r.workers {
		if filter.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

func (r *catalogRepository) WizardCandidates(serviceID int, city string) []entity.Worker {
	var out []entity.Worker
	for _, w := range r.workers {
		if serviceID != 0 && w.ServiceID != serviceID {
			continue
		}
		if city != "" && city != FilterAll && w.City != city {
			continue
		}
		out = append(out, w)
	}
	return out
}
