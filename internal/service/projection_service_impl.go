package service

import (
	"context"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/repository"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

type projectionService struct {
	jobs repository.JobRepo
}

func NewProjectionService(jobs repository.JobRepo) ProjectionService {
	return &projectionService{jobs: jobs}
}

func (s *projectionService) Events(ctx context.Context, filter scheduler.ViewFilter) ([]domain.ProjectedEvent, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return scheduler.ProjectJobs(jobs, filter), nil
}
