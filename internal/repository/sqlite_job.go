package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// jobColumns is the canonical SELECT column list for jobs.
const jobColumns = `id, title, total_hours, per_day_hours,
		shipping_date, in_hand_date, calendar_group, color_key,
		created_at, updated_at`

// SQLiteJobRepo implements JobRepo using a SQLite database.
type SQLiteJobRepo struct {
	db *sql.DB
}

// NewSQLiteJobRepo creates a new SQLiteJobRepo.
func NewSQLiteJobRepo(db *sql.DB) *SQLiteJobRepo {
	return &SQLiteJobRepo{db: db}
}

func (r *SQLiteJobRepo) Create(ctx context.Context, j *domain.Job) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO jobs (id, title, total_hours, per_day_hours,
		shipping_date, in_hand_date, calendar_group, color_key, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		j.ID,
		j.Title,
		j.TotalHours,
		j.PerDayHours,
		nullableTimeToString(j.ShippingDate, domain.DateLayout),
		nullableTimeToString(j.InHandDate, domain.DateLayout),
		j.CalendarGroup,
		j.ColorKey,
		j.CreatedAt.Format(time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}

	if err := insertEntries(ctx, tx, j.ID, j.Schedule); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing job insert: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	job, err := scanJob(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadSchedule(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (r *SQLiteJobRepo) List(ctx context.Context) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}

	for _, j := range jobs {
		if err := r.loadSchedule(ctx, j); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

// UpdateSchedule replaces the job's entire entry list in one transaction.
// The engine always hands over a fully validated schedule, so a partial
// write would be worse than no write.
func (r *SQLiteJobRepo) UpdateSchedule(ctx context.Context, jobID string, entries []domain.ScheduleEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireJob(ctx, tx, jobID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_entries WHERE job_id = ?`, jobID); err != nil {
		return fmt.Errorf("clearing schedule: %w", err)
	}
	if err := insertEntries(ctx, tx, jobID, entries); err != nil {
		return err
	}
	if err := touchJob(ctx, tx, jobID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schedule update: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) UpdateMilestone(ctx context.Context, jobID string, kind domain.MilestoneKind, date *time.Time) error {
	var column string
	switch kind {
	case domain.MilestoneShipping:
		column = "shipping_date"
	case domain.MilestoneInHand:
		column = "in_hand_date"
	default:
		return fmt.Errorf("unknown milestone kind %q", kind)
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s = ?, updated_at = ? WHERE id = ?`, column)
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(date, domain.DateLayout), nowUTC(), jobID)
	if err != nil {
		return fmt.Errorf("updating %s: %w", column, err)
	}
	return requireRowAffected(res, jobID)
}

func (r *SQLiteJobRepo) UpdateDisplay(ctx context.Context, jobID, colorKey, calendarGroup string) error {
	query := `UPDATE jobs SET color_key = ?, calendar_group = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, colorKey, calendarGroup, nowUTC(), jobID)
	if err != nil {
		return fmt.Errorf("updating job display: %w", err)
	}
	return requireRowAffected(res, jobID)
}

// TruncateLastEntry drops the highest-index schedule entry. Dates and
// hours live in the same row, so they can never fall out of lockstep.
func (r *SQLiteJobRepo) TruncateLastEntry(ctx context.Context, jobID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := requireJob(ctx, tx, jobID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM schedule_entries
		WHERE job_id = ? AND idx = (SELECT MAX(idx) FROM schedule_entries WHERE job_id = ?)`,
		jobID, jobID)
	if err != nil {
		return fmt.Errorf("truncating schedule: %w", err)
	}
	if err := touchJob(ctx, tx, jobID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing truncate: %w", err)
	}
	return nil
}

func (r *SQLiteJobRepo) Delete(ctx context.Context, jobID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, jobID)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return requireRowAffected(res, jobID)
}

func (r *SQLiteJobRepo) loadSchedule(ctx context.Context, j *domain.Job) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, hours FROM schedule_entries WHERE job_id = ? ORDER BY idx`, j.ID)
	if err != nil {
		return fmt.Errorf("loading schedule for job %s: %w", j.ID, err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntry
	for rows.Next() {
		var dateStr string
		var hours float64
		if err := rows.Scan(&dateStr, &hours); err != nil {
			return fmt.Errorf("scanning schedule entry: %w", err)
		}
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.ID, err)
		}
		entries = append(entries, domain.ScheduleEntry{Date: date, Hours: hours})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating schedule entries: %w", err)
	}
	j.Schedule = entries
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	var shipping, inHand sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.TotalHours,
		&j.PerDayHours,
		&shipping,
		&inHand,
		&j.CalendarGroup,
		&j.ColorKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("job: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning job: %w", err)
	}

	j.ShippingDate = parseNullableTime(shipping, domain.DateLayout)
	j.InHandDate = parseNullableTime(inHand, domain.DateLayout)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		j.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		j.UpdatedAt = t
	}
	return &j, nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, jobID string, entries []domain.ScheduleEntry) error {
	for i, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedule_entries (job_id, idx, date, hours) VALUES (?, ?, ?, ?)`,
			jobID, i, domain.FormatDate(e.Date), e.Hours)
		if err != nil {
			return fmt.Errorf("inserting schedule entry %d: %w", i, err)
		}
	}
	return nil
}

func requireJob(ctx context.Context, tx *sql.Tx, jobID string) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM jobs WHERE id = ?`, jobID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking job %s: %w", jobID, err)
	}
	return nil
}

func touchJob(ctx context.Context, tx *sql.Tx, jobID string) error {
	if _, err := tx.ExecContext(ctx, `UPDATE jobs SET updated_at = ? WHERE id = ?`, nowUTC(), jobID); err != nil {
		return fmt.Errorf("touching job %s: %w", jobID, err)
	}
	return nil
}

func requireRowAffected(res sql.Result, jobID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	return nil
}
