package response

import (
	"awami-saholat/internal/data/entity"
)

type WorkerListResponse struct {
	Workers []entity.Worker `json:"workers"`
	Count   int             `json:"count"`
}

type WorkerDetailResponse struct {
	entity.Worker
	Service entity.ServiceCategory `json:"service"`
	Reviews []entity.Review        `json:"reviews"`
}
