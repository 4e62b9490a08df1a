package report

import (
	"context"
	"time"

	"ClassLedger/entity"
)

type Core interface {
	CountClassesToday(ctx context.Context) (int64, error)
	CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error)
	MonthlyRevenue(ctx context.Context) (int64, error)
	SumPaidFees(ctx context.Context, start, end time.Time) (int64, error)
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}
