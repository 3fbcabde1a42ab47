package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/repository"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

type scheduleService struct {
	jobs repository.JobRepo
	feed *ChangeFeed
	obs  UseCaseObserver
}

func NewScheduleService(jobs repository.JobRepo, feed *ChangeFeed, obs UseCaseObserver) ScheduleService {
	if obs == nil {
		obs = NoopUseCaseObserver{}
	}
	return &scheduleService{jobs: jobs, feed: feed, obs: obs}
}

// mutate loads the job's current snapshot and runs one engine command
// against it through the command layer. Rejections propagate with the
// snapshot untouched; nothing is persisted here.
func (s *scheduleService) mutate(ctx context.Context, jobID string, cmd scheduler.Command) (*domain.Job, error) {
	current, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	state, err := scheduler.Apply(scheduler.State{Jobs: []*domain.Job{current}}, cmd)
	if err != nil {
		return nil, err
	}
	return state.Jobs[0], nil
}

func (s *scheduleService) Move(ctx context.Context, jobID string, index int, newDate time.Time) (job *domain.Job, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "schedule.move", start, err, map[string]any{
			"job_id": jobID, "index": index, "new_date": domain.FormatDate(newDate),
		})
	}()

	moved, err := s.mutate(ctx, jobID, scheduler.MoveEntryCmd{JobID: jobID, Index: index, NewDate: newDate})
	if err != nil {
		return nil, err
	}
	return s.commitSchedule(ctx, *moved)
}

func (s *scheduleService) Resize(ctx context.Context, jobID string, index int, newEndDate time.Time) (job *domain.Job, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "schedule.resize", start, err, map[string]any{
			"job_id": jobID, "index": index, "new_end": domain.FormatDate(newEndDate),
		})
	}()

	extended, err := s.mutate(ctx, jobID, scheduler.ResizeLastCmd{JobID: jobID, Index: index, NewEndDate: newEndDate})
	if err != nil {
		return nil, err
	}
	return s.commitSchedule(ctx, *extended)
}

func (s *scheduleService) RemoveLast(ctx context.Context, jobID string) (job *domain.Job, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.obs, "schedule.remove_last", start, err, map[string]any{"job_id": jobID})
	}()

	truncated, err := s.mutate(ctx, jobID, scheduler.RemoveLastEntryCmd{JobID: jobID})
	if err != nil {
		return nil, err
	}

	if werr := s.jobs.TruncateLastEntry(ctx, jobID); werr != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailed, werr)
		return nil, err
	}
	s.notify(ctx)
	return truncated, nil
}

func (s *scheduleService) SetMilestone(ctx context.Context, jobID string, kind domain.MilestoneKind, date *time.Time) (job *domain.Job, err error) {
	start := time.Now()
	fields := map[string]any{"job_id": jobID, "kind": string(kind)}
	if date != nil {
		fields["date"] = domain.FormatDate(*date)
	}
	defer func() {
		observe(ctx, s.obs, "schedule.set_milestone", start, err, fields)
	}()

	if !domain.ValidMilestoneKinds[string(kind)] {
		return nil, &scheduler.Rejection{
			Code:   scheduler.CodeInvalidParameters,
			Reason: fmt.Sprintf("unknown milestone kind %q", kind),
		}
	}

	// Clearing a milestone is always allowed and has no engine command;
	// setting one goes through the command layer, which enforces the
	// milestone-move rule.
	var updated *domain.Job
	if date == nil {
		updated, err = s.jobs.GetByID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		switch kind {
		case domain.MilestoneShipping:
			updated.ShippingDate = nil
		case domain.MilestoneInHand:
			updated.InHandDate = nil
		}
	} else {
		updated, err = s.mutate(ctx, jobID, scheduler.MoveMilestoneCmd{JobID: jobID, Kind: kind, NewDate: *date})
		if err != nil {
			return nil, err
		}
	}

	if werr := s.jobs.UpdateMilestone(ctx, jobID, kind, updated.Milestone(kind)); werr != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailed, werr)
		return nil, err
	}
	s.notify(ctx)
	return updated, nil
}

func (s *scheduleService) commitSchedule(ctx context.Context, job domain.Job) (*domain.Job, error) {
	if werr := s.jobs.UpdateSchedule(ctx, job.ID, job.Schedule); werr != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, werr)
	}
	s.notify(ctx)
	return &job, nil
}

func (s *scheduleService) notify(ctx context.Context) {
	if s.feed == nil {
		return
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return
	}
	s.feed.Publish(jobs)
}
