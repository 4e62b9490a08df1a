package report

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClassLedger/entity"
)

type fakeCore struct {
	start, end time.Time
}

func (f *fakeCore) CountClassesToday(context.Context) (int64, error) { return 0, nil }

func (f *fakeCore) CountClassesInWindow(_ context.Context, start, end time.Time) (int64, error) {
	f.start, f.end = start, end
	return 0, nil
}

func (f *fakeCore) MonthlyRevenue(context.Context) (int64, error) { return 0, nil }

func (f *fakeCore) SumPaidFees(_ context.Context, start, end time.Time) (int64, error) {
	f.start, f.end = start, end
	return 0, nil
}

func (f *fakeCore) Dashboard(context.Context) (*entity.DashboardStats, error) {
	return &entity.DashboardStats{}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Schedule records carry midnights in the ledger's zone; caller-supplied
// window bounds must be read in that zone or the count misses a day.
func TestClassesInWindow_BoundsUseConfiguredZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	core := &fakeCore{}
	h := ClassesInWindow(discardLogger(), core, loc)

	r := httptest.NewRequest(http.MethodGet, "/?start=2024-03-01&end=2024-04-01", nil)
	w := httptest.NewRecorder()
	h(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), core.start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, loc), core.end)
}

func TestRevenueInWindow_BoundsUseConfiguredZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	core := &fakeCore{}
	h := RevenueInWindow(discardLogger(), core, loc)

	r := httptest.NewRequest(http.MethodGet, "/?start=2024-03-01&end=2024-04-01", nil)
	w := httptest.NewRecorder()
	h(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), core.start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, loc), core.end)
}
