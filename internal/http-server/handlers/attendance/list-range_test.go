package attendance

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
	date       time.Time
}

func (f *fakeCore) RecordAttendance(_ context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes, markedBy string) (*entity.Attendance, error) {
	f.date = date
	return entity.NewAttendance(studentID, date, status, notes, markedBy), nil
}

func (f *fakeCore) CorrectAttendance(_ context.Context, _ string, date time.Time, _ entity.AttendanceStatus, _ string) error {
	f.date = date
	return nil
}

func (f *fakeCore) GetAttendance(_ context.Context, studentID string, date time.Time) (*entity.Attendance, error) {
	f.date = date
	return &entity.Attendance{StudentID: studentID, Date: date, Status: entity.StatusPresent}, nil
}

func (f *fakeCore) ListAttendance(_ context.Context, _ string, start, end time.Time) ([]entity.Attendance, error) {
	f.start, f.end = start, end
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Stored day records carry midnights in the ledger's zone, so caller-supplied
// dates must land on those same midnights, not UTC ones.
func TestListRange_BoundsUseConfiguredZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	core := &fakeCore{}
	h := ListRange(discardLogger(), core, loc)

	r := httptest.NewRequest(http.MethodGet, "/?start=2024-03-10&end=2024-03-12", nil)
	w := httptest.NewRecorder()
	h(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), core.start)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, loc), core.end)
}

func TestListRange_RejectsMalformedDate(t *testing.T) {
	h := ListRange(discardLogger(), &fakeCore{}, time.UTC)

	r := httptest.NewRequest(http.MethodGet, "/?start=10-03-2024&end=2024-03-12", nil)
	w := httptest.NewRecorder()
	h(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_DateUsesConfiguredZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	core := &fakeCore{}
	h := Get(discardLogger(), core, loc)

	r := httptest.NewRequest(http.MethodGet, "/?student_id=STU10001&date=2024-03-10", nil)
	w := httptest.NewRecorder()
	h(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), core.date)
}
