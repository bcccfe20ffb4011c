package response

import (
	"awami-saholat/internal/data/entity"
)

// ServiceStatsResponse adalah kategori + statistik turunan dari katalog
// worker (count, rata-rata rating dan harga).
type ServiceStatsResponse struct {
	entity.ServiceCategory
	WorkerCount int     `json:"worker_count"`
	AvgRating   float64 `json:"avg_rating"` // satu desimal
	AvgPrice    int     `json:"avg_price"`  // dibulatkan, Rs/hr
}

type HomeResponse struct {
	SiteName    string                   `json:"site_name"`
	Tagline     string                   `json:"tagline"`
	Services    []entity.ServiceCategory `json:"services"`
	CityCount   int                      `json:"city_count"`
	WorkerCount int                      `json:"worker_count"`
}

type ContentResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PreferencesResponse struct {
	City      string `json:"city"`
	ServiceID int    `json:"service_id"`
}
