package service

import (
	"context"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
)

// CreateJobParams is the validated boundary input for job creation. Raw
// CLI/form input is parsed into this shape before it reaches the engine.
type CreateJobParams struct {
	Title         string
	TotalHours    float64
	PerDayHours   float64
	StartDate     time.Time
	ShippingDate  *time.Time
	InHandDate    *time.Time
	CalendarGroup string
	ColorKey      string
}

type JobService interface {
	Create(ctx context.Context, params CreateJobParams) (*domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	UpdateDisplay(ctx context.Context, id, colorKey, calendarGroup string) error
	Delete(ctx context.Context, id string) error
}

// ScheduleService applies calendar interactions to a job's schedule. Each
// operation loads a consistent snapshot, runs the engine, and persists only
// on acceptance; a rejection leaves both memory and storage untouched.
type ScheduleService interface {
	Move(ctx context.Context, jobID string, index int, newDate time.Time) (*domain.Job, error)
	Resize(ctx context.Context, jobID string, index int, newEndDate time.Time) (*domain.Job, error)
	RemoveLast(ctx context.Context, jobID string) (*domain.Job, error)
	SetMilestone(ctx context.Context, jobID string, kind domain.MilestoneKind, date *time.Time) (*domain.Job, error)
}

type ProjectionService interface {
	Events(ctx context.Context, filter scheduler.ViewFilter) ([]domain.ProjectedEvent, error)
}
