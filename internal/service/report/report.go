package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ClassLedger/entity"
	"ClassLedger/internal/lib/sl"
)

// Repository is the aggregation surface of the store. Counts and sums are
// recomputed from it on every call; the service keeps no cached totals.
type Repository interface {
	CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error)
	SumPaidFeesInWindow(ctx context.Context, start, end time.Time) (int64, error)
	CountActiveStudents(ctx context.Context) (int64, error)
}

type Service struct {
	repo    Repository
	loc     *time.Location
	timeout time.Duration
	now     func() time.Time
	log     *slog.Logger
}

func NewService(repo Repository, loc *time.Location, timeout time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		loc:     loc,
		timeout: timeout,
		now:     time.Now,
		log:     log.With(sl.Module("report-service")),
	}
}

// boundErr converts a deadline hit into the Timeout sentinel. A timed-out
// aggregation must never be presented as a (partial) result.
func boundErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, entity.ErrTimeout) {
		return entity.ErrTimeout
	}
	return err
}

// CountClassesInWindow counts scheduled classes with date in [start, end).
func (s *Service) CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, entity.ErrInvalidWindow
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.repo.CountClassesInWindow(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("count classes: %w", boundErr(err))
	}
	return count, nil
}

// CountClassesToday counts classes scheduled for the current calendar day in
// the configured window time zone. The window is derived at call time.
func (s *Service) CountClassesToday(ctx context.Context) (int64, error) {
	start, end := DayWindow(s.now(), s.loc)
	return s.CountClassesInWindow(ctx, start, end)
}

// SumPaidFees sums paid fee lines with payment date in [start, end).
// Zero matches is a legitimate zero, not a failure.
func (s *Service) SumPaidFees(ctx context.Context, start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, entity.ErrInvalidWindow
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.repo.SumPaidFeesInWindow(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("sum paid fees: %w", boundErr(err))
	}
	return total, nil
}

// MonthlyRevenue sums the current calendar month's collected fees, minor
// units, over the half-open month window.
func (s *Service) MonthlyRevenue(ctx context.Context) (int64, error) {
	start, end := MonthWindow(s.now(), s.loc)
	return s.SumPaidFees(ctx, start, end)
}

// Dashboard recomputes the operational stats in one call.
func (s *Service) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	classes, err := s.CountClassesToday(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	stuCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	students, err := s.repo.CountActiveStudents(stuCtx)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", boundErr(err))
	}

	return &entity.DashboardStats{
		ClassesToday:   classes,
		MonthlyRevenue: revenue,
		ActiveStudents: students,
	}, nil
}
