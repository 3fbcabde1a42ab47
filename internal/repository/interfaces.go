package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// JobRepo is the persistence collaborator for jobs and their schedules.
// Writes are full-state per job: UpdateSchedule replaces the whole entry
// list so the stored schedule always mirrors an engine-validated snapshot.
type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	UpdateSchedule(ctx context.Context, jobID string, entries []domain.ScheduleEntry) error
	UpdateMilestone(ctx context.Context, jobID string, kind domain.MilestoneKind, date *time.Time) error
	UpdateDisplay(ctx context.Context, jobID, colorKey, calendarGroup string) error
	TruncateLastEntry(ctx context.Context, jobID string) error
	Delete(ctx context.Context, jobID string) error
}
