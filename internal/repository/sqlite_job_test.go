package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRepo(t *testing.T) *SQLiteJobRepo {
	t.Helper()
	return NewSQLiteJobRepo(testutil.NewTestDB(t))
}

func TestSQLiteJobRepo_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1),
		testutil.WithShippingDate(date(2025, 7, 9)),
		testutil.WithCalendarGroup("print"),
		testutil.WithColorKey("purple"),
	)
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banners", got.Title)
	assert.Equal(t, 24.0, got.TotalHours)
	assert.Equal(t, "print", got.CalendarGroup)
	assert.Equal(t, "purple", got.ColorKey)
	require.NotNil(t, got.ShippingDate)
	assert.Equal(t, date(2025, 7, 9), *got.ShippingDate)
	assert.Nil(t, got.InHandDate)

	require.Len(t, got.Schedule, 3)
	assert.Equal(t, date(2025, 7, 1), got.Schedule[0].Date)
	assert.Equal(t, 8.0, got.Schedule[0].Hours)
}

func TestSQLiteJobRepo_GetMissing(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteJobRepo_ListOrdersByCreation(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first := testutil.NewTestJob("First", date(2025, 7, 1))
	second := testutil.NewTestJob("Second", date(2025, 7, 8))
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "First", jobs[0].Title)
	assert.Equal(t, "Second", jobs[1].Title)
	assert.Len(t, jobs[0].Schedule, 3)
}

func TestSQLiteJobRepo_UpdateScheduleReplacesAllEntries(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1))
	require.NoError(t, repo.Create(ctx, job))

	replacement := []domain.ScheduleEntry{
		{Date: date(2025, 7, 7), Hours: 8},
		{Date: date(2025, 7, 8), Hours: 8},
		{Date: date(2025, 7, 9), Hours: 8},
		{Date: date(2025, 7, 10), Hours: 4},
	}
	require.NoError(t, repo.UpdateSchedule(ctx, job.ID, replacement))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, got.Schedule, 4)
	assert.Equal(t, replacement, got.Schedule)

	assert.ErrorIs(t, repo.UpdateSchedule(ctx, "ghost", replacement), ErrNotFound)
}

func TestSQLiteJobRepo_UpdateMilestone(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1))
	require.NoError(t, repo.Create(ctx, job))

	ship := date(2025, 7, 9)
	require.NoError(t, repo.UpdateMilestone(ctx, job.ID, domain.MilestoneShipping, &ship))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ShippingDate)
	assert.Equal(t, ship, *got.ShippingDate)

	// Clearing a milestone stores NULL.
	require.NoError(t, repo.UpdateMilestone(ctx, job.ID, domain.MilestoneShipping, nil))
	got, err = repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ShippingDate)

	assert.Error(t, repo.UpdateMilestone(ctx, job.ID, domain.MilestoneKind("bogus"), &ship))
	assert.ErrorIs(t, repo.UpdateMilestone(ctx, "ghost", domain.MilestoneShipping, &ship), ErrNotFound)
}

func TestSQLiteJobRepo_UpdateDisplay(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1))
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.UpdateDisplay(ctx, job.ID, "green", "install"))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "green", got.ColorKey)
	assert.Equal(t, "install", got.CalendarGroup)
}

func TestSQLiteJobRepo_TruncateLastEntry(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1))
	require.NoError(t, repo.Create(ctx, job))

	require.NoError(t, repo.TruncateLastEntry(ctx, job.ID))
	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, date(2025, 7, 2), got.Schedule[1].Date)

	// Emptying the schedule entirely is allowed; further truncates no-op.
	require.NoError(t, repo.TruncateLastEntry(ctx, job.ID))
	require.NoError(t, repo.TruncateLastEntry(ctx, job.ID))
	require.NoError(t, repo.TruncateLastEntry(ctx, job.ID))
	got, err = repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Schedule)

	assert.ErrorIs(t, repo.TruncateLastEntry(ctx, "ghost"), ErrNotFound)
}

func TestSQLiteJobRepo_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := testutil.NewTestJob("Banners", date(2025, 7, 1))
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.Delete(ctx, job.ID))

	_, err := repo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, job.ID), ErrNotFound)
}
