package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/repository"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"github.com/google/uuid"
)

// ErrWriteFailed signals that a locally accepted mutation could not be
// persisted. Local and remote state diverge until the next snapshot;
// callers reconcile rather than retry blindly.
var ErrWriteFailed = errors.New("persistence write failed, reconcile on next snapshot")

type jobService struct {
	jobs repository.JobRepo
	feed *ChangeFeed
	obs  UseCaseObserver
}

func NewJobService(jobs repository.JobRepo, feed *ChangeFeed, obs UseCaseObserver) JobService {
	if obs == nil {
		obs = NoopUseCaseObserver{}
	}
	return &jobService{jobs: jobs, feed: feed, obs: obs}
}

func (s *jobService) Create(ctx context.Context, params CreateJobParams) (job *domain.Job, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "job.create", start, err, map[string]any{"title": params.Title})
	}()

	// Creation runs through the engine's command layer, which validates
	// the parameters, generates the schedule, and checks milestone bounds.
	state, err := scheduler.Apply(scheduler.State{}, scheduler.CreateJob{
		ID:            uuid.New().String(),
		Title:         params.Title,
		TotalHours:    params.TotalHours,
		PerDayHours:   params.PerDayHours,
		StartDate:     params.StartDate,
		ShippingDate:  params.ShippingDate,
		InHandDate:    params.InHandDate,
		CalendarGroup: params.CalendarGroup,
		ColorKey:      params.ColorKey,
	})
	if err != nil {
		return nil, err
	}
	job = state.Jobs[0]

	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	if werr := s.jobs.Create(ctx, job); werr != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailed, werr)
		return nil, err
	}
	s.notify(ctx)
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.List(ctx)
}

func (s *jobService) UpdateDisplay(ctx context.Context, id, colorKey, calendarGroup string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "job.update_display", start, err, map[string]any{"job_id": id})
	}()

	if err = s.jobs.UpdateDisplay(ctx, id, colorKey, calendarGroup); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

func (s *jobService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "job.delete", start, err, map[string]any{"job_id": id})
	}()

	if err = s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// notify pushes a fresh full snapshot to feed subscribers. A failed
// re-read is swallowed: the write itself succeeded and subscribers will
// catch up on the next snapshot.
func (s *jobService) notify(ctx context.Context) {
	if s.feed == nil {
		return
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return
	}
	s.feed.Publish(jobs)
}
