package usecase

import (
	"context"
	"fmt"

	"awami-saholat/internal/data/repository"
	"awami-saholat/internal/dto/response"

	"go.uber.org/zap"
)

type WorkerService interface {
	// List menjalankan filter engine di atas katalog statis.
	List(ctx context.Context, filter repository.WorkerFilter) (*response.WorkerListResponse, error)
	Detail(ctx context.Context, workerID int) (*response.WorkerDetailResponse, error)
}

type workerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWorkerService(repo *repository.Repository, log *zap.Logger) WorkerService {
	return &workerService{
		repo: repo,
		log:  log.With(zap.String("service", "worker")),
	}
}

func (s *workerService) List(ctx context.Context, filter repository.WorkerFilter) (*response.WorkerListResponse, error) {
	workers := s.repo.Catalog.FilterWorkers(filter)
	return &response.WorkerListResponse{
		Workers: workers,
		Count:   len(workers),
	}, nil
}

func (s *workerService) Detail(ctx context.Context, workerID int) (*response.WorkerDetailResponse, error) {
	worker, ok := s.repo.Catalog.WorkerByID(workerID)
	if !ok {
		return nil, fmt.Errorf("worker %d not found", workerID)
	}

	service, _ := s.repo.Catalog.ServiceByID(worker.ServiceID)

	return &response.WorkerDetailResponse{
		Worker:  worker,
		Service: service,
		Reviews: s.repo.Catalog.ReviewsByWorker(workerID),
	}, nil
}
