package service

import (
	"context"
	"time"

	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"go.uber.org/zap"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type zapUseCaseObserver struct {
	logger *zap.Logger
}

// NewZapUseCaseObserver writes service use-case events to the provided
// logger. Rejections log at info level with their code; real failures
// log at error level.
func NewZapUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &zapUseCaseObserver{logger: logger}
}

func (o *zapUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := []zap.Field{
		zap.String("use_case", event.Name),
		zap.Duration("duration", event.Duration),
	}
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch {
	case event.Success:
		o.logger.Info("use case completed", fields...)
	default:
		if r, ok := scheduler.AsRejection(event.Err); ok {
			fields = append(fields,
				zap.String("rejection_code", string(r.Code)),
				zap.String("reason", r.Reason))
			o.logger.Info("use case rejected", fields...)
			return
		}
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("use case failed", fields...)
	}
}

// observe reports one use-case execution to the observer.
func observe(ctx context.Context, obs UseCaseObserver, name string, start time.Time, err error, fields map[string]any) {
	if obs == nil {
		return
	}
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
