package entity

// Worker adalah profil profesional dari katalog statis.
// Never created or mutated at runtime.
type Worker struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	ServiceID     int      `json:"service_id"`
	ServiceType   string   `json:"service_type"` // display name
	City          string   `json:"city"`
	Area          string   `json:"area"`
	PricePerHour  float64  `json:"price_per_hour"` // Rs, per hour
	Rating        float64  `json:"rating"`         // 0-5
	TotalReviews  int      `json:"total_reviews"`
	Verified      bool     `json:"verified"`
	Experience    string   `json:"experience"`
	CompletedJobs int      `json:"completed_jobs"`
	ResponseTime  string   `json:"response_time"`
	Languages     []string `json:"languages"`
	Availability  string   `json:"availability"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
}
