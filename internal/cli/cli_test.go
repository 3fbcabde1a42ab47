package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/config"
	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/repository"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"github.com/dancinggoatstudios/shopcal/internal/service"
)

// stubJobService serves a fixed job list; mutations are not supported.
type stubJobService struct {
	jobs []*domain.Job
}

func (s *stubJobService) Create(ctx context.Context, params service.CreateJobParams) (*domain.Job, error) {
	return nil, errors.New("create not supported in stub")
}

func (s *stubJobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubJobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs, nil
}

func (s *stubJobService) UpdateDisplay(ctx context.Context, id, colorKey, calendarGroup string) error {
	return nil
}

func (s *stubJobService) Delete(ctx context.Context, id string) error {
	return nil
}

type scheduleCall struct {
	op    string
	jobID string
	index int
	date  time.Time
}

// stubScheduleService records schedule mutations and returns a canned error.
type stubScheduleService struct {
	calls []scheduleCall
	err   error
}

func (s *stubScheduleService) Move(ctx context.Context, jobID string, index int, newDate time.Time) (*domain.Job, error) {
	s.calls = append(s.calls, scheduleCall{op: "move", jobID: jobID, index: index, date: newDate})
	return nil, s.err
}

func (s *stubScheduleService) Resize(ctx context.Context, jobID string, index int, newEndDate time.Time) (*domain.Job, error) {
	s.calls = append(s.calls, scheduleCall{op: "resize", jobID: jobID, index: index, date: newEndDate})
	return nil, s.err
}

func (s *stubScheduleService) RemoveLast(ctx context.Context, jobID string) (*domain.Job, error) {
	s.calls = append(s.calls, scheduleCall{op: "pop", jobID: jobID})
	return nil, s.err
}

func (s *stubScheduleService) SetMilestone(ctx context.Context, jobID string, kind domain.MilestoneKind, date *time.Time) (*domain.Job, error) {
	call := scheduleCall{op: "milestone", jobID: jobID}
	if date != nil {
		call.date = *date
	}
	s.calls = append(s.calls, call)
	return nil, s.err
}

// stubProjectionService projects a fixed event list.
type stubProjectionService struct {
	events []domain.ProjectedEvent
	err    error
}

func (s *stubProjectionService) Events(ctx context.Context, filter scheduler.ViewFilter) ([]domain.ProjectedEvent, error) {
	return s.events, s.err
}

func testApp(jobs []*domain.Job, events []domain.ProjectedEvent) *App {
	return &App{
		Jobs:       &stubJobService{jobs: jobs},
		Projection: &stubProjectionService{events: events},
		Feed:       service.NewChangeFeed(),
		Config: &config.Config{
			Defaults: config.DefaultsConfig{PerDayHours: 8, ColorKey: "blue"},
			View:     config.ViewConfig{ShowShipping: true, ShowInHand: true},
			Palette:  map[string]string{"blue": "#83a598", "red": "#fb4934"},
		},
	}
}

func testJob(id, title string) *domain.Job {
	return &domain.Job{
		ID:          id,
		Title:       title,
		TotalHours:  16,
		PerDayHours: 8,
		Schedule: []domain.ScheduleEntry{
			{Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Hours: 8},
			{Date: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), Hours: 8},
		},
		ColorKey: "blue",
	}
}
