package usecase

import (
	"context"
	"math"

	"awami-saholat/internal/data/entity"
	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/request"
	"awami-saholat/internal/dto/response"
	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	Services(ctx context.Context) ([]response.ServiceStatsResponse, error)
	Cities(ctx context.Context) ([]entity.City, error)
	Home(ctx context.Context) (*response.HomeResponse, error)
	About(ctx context.Context) (*response.ContentResponse, error)
	Contact(ctx context.Context) (*response.ContentResponse, error)

	Preferences(ctx context.Context) (*response.PreferencesResponse, error)
	UpdatePreferences(ctx context.Context, req *request.PreferencesRequest) (*response.PreferencesResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewCatalogService(repo *repository.Repository, config *utils.Config, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "catalog")),
	}
}

// Services returns setiap kategori plus statistik turunan dari katalog
// worker: jumlah, rata-rata rating (satu desimal) dan harga (dibulatkan).
func (s *catalogService) Services(ctx context.Context) ([]response.ServiceStatsResponse, error) {
	categories := s.repo.Catalog.Services()
	out := make([]response.ServiceStatsResponse, 0, len(categories))

	for _, category := range categories {
		var count int
		var sumRating, sumPrice float64
		for _, w := range s.repo.Catalog.Workers() {
			if w.ServiceID != category.ID {
				continue
			}
			count++
			sumRating += w.Rating
			sumPrice += w.PricePerHour
		}

		stats := response.ServiceStatsResponse{
			ServiceCategory: category,
			WorkerCount:     count,
		}
		if count > 0 {
			stats.AvgRating = math.Round(sumRating/float64(count)*10) / 10
			stats.AvgPrice = int(math.Round(sumPrice / float64(count)))
		}
		out = append(out, stats)
	}

	return out, nil
}

func (s *catalogService) Cities(ctx context.Context) ([]entity.City, error) {
	return s.repo.Catalog.Cities(), nil
}

func (s *catalogService) Home(ctx context.Context) (*response.HomeResponse, error) {
	return &response.HomeResponse{
		SiteName:    s.config.App.Name,
		Tagline:     "Trusted home services at your doorstep",
		Services:    s.repo.Catalog.Services(),
		CityCount:   len(s.repo.Catalog.Cities()),
		WorkerCount: len(s.repo.Catalog.Workers()),
	}, nil
}

func (s *catalogService) About(ctx context.Context) (*response.ContentResponse, error) {
	return &response.ContentResponse{
		Title: "About Awami Saholat",
		Body: "Awami Saholat connects households with verified home-service " +
			"professionals - plumbers, electricians, carpenters, painters, AC " +
			"technicians and cleaners - across major Pakistani cities.",
	}, nil
}

func (s *catalogService) Contact(ctx context.Context) (*response.ContentResponse, error) {
	return &response.ContentResponse{
		Title: "Contact Us",
		Body:  "Email support@awamisaholat.pk or call 051-111-726-726 (9am-9pm, all week).",
	}, nil
}

func (s *catalogService) Preferences(ctx context.Context) (*response.PreferencesResponse, error) {
	return &response.PreferencesResponse{
		City:      s.repo.Session.SelectedCity(),
		ServiceID: s.repo.Session.SelectedService(),
	}, nil
}

func (s *catalogService) UpdatePreferences(ctx context.Context, req *request.PreferencesRequest) (*response.PreferencesResponse, error) {
	if req.City != nil {
		s.repo.Session.SetSelectedCity(*req.City)
	}
	if req.ServiceID != nil {
		s.repo.Session.SetSelectedService(*req.ServiceID)
	}
	return s.Preferences(ctx)
}
