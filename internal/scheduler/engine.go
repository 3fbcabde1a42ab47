package scheduler

import (
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
)

// State is an explicit snapshot of every job the engine knows about, owned
// by the caller and replaced wholesale by each operation. There is no
// package-level mutable state.
//
// LocalSeq counts locally-applied mutations; AckedSeq is the highest
// mutation the persistence collaborator has acknowledged. The gap between
// them drives snapshot reconciliation: a remote snapshot arriving while a
// local write is still in flight is discarded, because the local optimistic
// state is authoritative until acknowledged.
type State struct {
	Jobs     []*domain.Job
	LocalSeq uint64
	AckedSeq uint64
}

// Command is a mutation applied through Apply. The concrete command types
// mirror the user interactions on the calendar: create, drag, resize, pop,
// milestone drag.
type Command interface {
	isCommand()
}

type CreateJob struct {
	ID            string
	Title         string
	TotalHours    float64
	PerDayHours   float64
	StartDate     time.Time
	ShippingDate  *time.Time
	InHandDate    *time.Time
	CalendarGroup string
	ColorKey      string
}

type MoveEntryCmd struct {
	JobID   string
	Index   int
	NewDate time.Time
}

type ResizeLastCmd struct {
	JobID      string
	Index      int
	NewEndDate time.Time
}

type RemoveLastEntryCmd struct {
	JobID string
}

type MoveMilestoneCmd struct {
	JobID   string
	Kind    domain.MilestoneKind
	NewDate time.Time
}

func (CreateJob) isCommand()          {}
func (MoveEntryCmd) isCommand()       {}
func (ResizeLastCmd) isCommand()      {}
func (RemoveLastEntryCmd) isCommand() {}
func (MoveMilestoneCmd) isCommand()   {}

// Apply runs one command against a state snapshot and returns the successor
// state. On rejection the input state is returned unchanged alongside the
// typed rejection; a command never partially applies.
func Apply(s State, cmd Command) (State, error) {
	switch c := cmd.(type) {
	case CreateJob:
		return s.applyCreate(c)
	case MoveEntryCmd:
		return s.applyToJob(c.JobID, func(job domain.Job) (domain.Job, error) {
			return MoveEntry(job, c.Index, c.NewDate)
		})
	case ResizeLastCmd:
		return s.applyToJob(c.JobID, func(job domain.Job) (domain.Job, error) {
			return ExtendSchedule(job, c.Index, c.NewEndDate)
		})
	case RemoveLastEntryCmd:
		return s.applyToJob(c.JobID, func(job domain.Job) (domain.Job, error) {
			return TruncateLast(job), nil
		})
	case MoveMilestoneCmd:
		return s.applyToJob(c.JobID, func(job domain.Job) (domain.Job, error) {
			if err := ValidateMilestoneMove(&job, c.Kind, c.NewDate); err != nil {
				return job, err
			}
			day := domain.Day(c.NewDate)
			switch c.Kind {
			case domain.MilestoneShipping:
				job.ShippingDate = &day
			case domain.MilestoneInHand:
				job.InHandDate = &day
			default:
				return job, reject(CodeInvalidParameters, "unknown milestone kind %q", c.Kind)
			}
			return job, nil
		})
	}
	return s, reject(CodeInvalidParameters, "unknown command %T", cmd)
}

func (s State) applyCreate(c CreateJob) (State, error) {
	job := &domain.Job{
		ID:            c.ID,
		Title:         c.Title,
		TotalHours:    c.TotalHours,
		PerDayHours:   c.PerDayHours,
		ShippingDate:  c.ShippingDate,
		InHandDate:    c.InHandDate,
		CalendarGroup: c.CalendarGroup,
		ColorKey:      c.ColorKey,
	}
	if err := job.Validate(); err != nil {
		return s, reject(CodeInvalidParameters, "%v", err)
	}
	schedule, err := BuildSchedule(c.StartDate, c.TotalHours, c.PerDayHours)
	if err != nil {
		return s, err
	}
	job.Schedule = schedule
	if err := ValidateMilestoneBound(job, schedule); err != nil {
		return s, err
	}

	next := s
	next.Jobs = append(append([]*domain.Job(nil), s.Jobs...), job)
	next.LocalSeq++
	return next, nil
}

func (s State) applyToJob(jobID string, mutate func(domain.Job) (domain.Job, error)) (State, error) {
	for i, job := range s.Jobs {
		if job.ID != jobID {
			continue
		}
		mutated, err := mutate(*job)
		if err != nil {
			return s, err
		}
		next := s
		next.Jobs = append([]*domain.Job(nil), s.Jobs...)
		next.Jobs[i] = &mutated
		next.LocalSeq++
		return next, nil
	}
	return s, reject(CodeUnknownJob, "no job with id %s", jobID)
}

// Acknowledge records that persistence has confirmed every local mutation
// up to seq.
func (s State) Acknowledge(seq uint64) State {
	if seq > s.AckedSeq {
		s.AckedSeq = seq
	}
	return s
}

// ReceiveSnapshot reconciles an incoming remote snapshot with local state.
// The snapshot is a full-state replace, never an incremental patch. While a
// local mutation is unacknowledged the snapshot is discarded (the local
// optimistic write wins until persistence confirms it); otherwise it is
// accepted. The boolean reports whether the snapshot was taken.
func (s State) ReceiveSnapshot(jobs []*domain.Job) (State, bool) {
	if s.LocalSeq > s.AckedSeq {
		return s, false
	}
	s.Jobs = jobs
	return s, true
}
