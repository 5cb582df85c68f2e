package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"courier-admin-service/internal/domain"
	"courier-admin-service/internal/ports"
)

const (
	// Assumed hand-off delay after the driver reached the previous customer.
	handOffDelay = 10 * time.Minute
	// Buffer after a prior-order timestamp, avoiding back-to-back duplicates.
	priorOrderBuffer = 10 * time.Second
	// Buffer between a stop's arrival and the next stop's start.
	interStopBuffer = 30 * time.Second
	// Base times older than this are treated as stale data.
	staleWindow = 5 * time.Minute
	// Base times further out than this are treated as corrupt data.
	maxFutureWindow = 72 * time.Hour

	maxLegMinutes     = 1440
	defaultLegMinutes = 30
)

// Estimator assigns a start timestamp to a route plan's first stop and
// propagates it through every leg.
type Estimator struct {
	orders ports.OrderRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewEstimator(orders ports.OrderRepository, logger *zap.Logger) *Estimator {
	return &Estimator{orders: orders, logger: logger, now: time.Now}
}

// BaseTime picks the anchor timestamp for a driver's next plan from their
// most recent order. Priority: completion, estimated delivery, reached
// customer plus the hand-off delay, then the current time. Stale values
// fall back to now; far-future values are clamped; prior-order values get
// a small buffer so consecutive plans never share a timestamp.
func (e *Estimator) BaseTime(ctx context.Context, driverID int64) (time.Time, domain.TimeSource, error) {
	now := e.now()

	last, err := e.orders.LatestOrderByDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return now, domain.SourceNow, nil
		}
		return time.Time{}, "", fmt.Errorf("base time: latest order for driver %d: %w", driverID, err)
	}

	base := now
	source := domain.SourceNow
	switch {
	case last.CompletedAt != nil:
		base, source = *last.CompletedAt, domain.SourceCompleted
	case !last.EstimatedDeliveryTime.IsZero():
		base, source = last.EstimatedDeliveryTime, domain.SourceEstimatedDelivery
	case last.ReachedCustomerAt != nil:
		base, source = last.ReachedCustomerAt.Add(handOffDelay), domain.SourceReachedCustomer
	}

	if base.Before(now.Add(-staleWindow)) {
		// Stale-data guard: a start time in the past would backdate the
		// whole plan.
		if source != domain.SourceNow {
			e.logger.Warn("stale base time discarded",
				zap.Int64("driver_id", driverID),
				zap.Time("base", base),
				zap.String("source", string(source)),
			)
		}
		return now, domain.SourceNow, nil
	}

	if base.After(now.Add(maxFutureWindow)) {
		e.logger.Warn("implausible future base time clamped",
			zap.Int64("driver_id", driverID),
			zap.Time("base", base),
		)
		base = now.Add(maxFutureWindow)
	}

	if source != domain.SourceNow {
		base = base.Add(priorOrderBuffer)
	}

	return base, source, nil
}

// Estimate walks the plan's legs and accumulates estimated durations into
// per-stop timestamps. Unparseable leg durations substitute a default
// rather than aborting; each leg is capped to a day of travel.
func (e *Estimator) Estimate(ctx context.Context, plan *domain.RoutePlan, driverID int64) (*domain.ScheduleEstimate, error) {
	if plan == nil || len(plan.Legs) == 0 {
		return nil, errors.New("estimate: plan has no legs")
	}

	base, source, err := e.BaseTime(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	est := &domain.ScheduleEstimate{
		Source:   source,
		BaseTime: base,
		Legs:     make([]domain.LegSchedule, 0, len(plan.Legs)),
	}

	start := base
	for _, leg := range plan.Legs {
		minutes, ok := ParseTimeToMinutes(leg.DurationText)
		if !ok {
			e.logger.Warn("unparseable leg duration, using default",
				zap.String("duration_text", leg.DurationText),
				zap.Int("sequence_index", leg.SequenceIndex),
				zap.Int("default_minutes", defaultLegMinutes),
			)
			minutes = defaultLegMinutes
		}
		if minutes > maxLegMinutes {
			minutes = maxLegMinutes
		}

		arrival := start.Add(time.Duration(minutes) * time.Minute)
		est.Legs = append(est.Legs, domain.LegSchedule{
			SequenceIndex:    leg.SequenceIndex,
			StartedAt:        start,
			EstimatedArrival: arrival,
		})
		start = arrival.Add(interStopBuffer)
	}

	return est, nil
}
