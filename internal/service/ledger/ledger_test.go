package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClassLedger/entity"
)

// fakeRepo enforces the same (student, day) uniqueness the mongo unique
// index provides, keyed on the already-normalized date it receives.
type fakeRepo struct {
	records  map[string]*entity.Attendance
	students map[string]*entity.Student
	counters map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		records:  make(map[string]*entity.Attendance),
		students: make(map[string]*entity.Student),
		counters: make(map[string]int),
	}
}

func key(studentID string, date time.Time) string {
	return studentID + "@" + date.Format(time.RFC3339)
}

func (f *fakeRepo) InsertAttendance(_ context.Context, rec *entity.Attendance) error {
	k := key(rec.StudentID, rec.Date)
	if _, ok := f.records[k]; ok {
		return entity.ErrDuplicateKey
	}
	f.records[k] = rec
	return nil
}

func (f *fakeRepo) GetAttendance(_ context.Context, studentID string, date time.Time) (*entity.Attendance, error) {
	rec, ok := f.records[key(studentID, date)]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return rec, nil
}

func (f *fakeRepo) ListAttendanceInRange(_ context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error) {
	var out []entity.Attendance
	for _, rec := range f.records {
		if studentID != "" && rec.StudentID != studentID {
			continue
		}
		if !rec.Date.Before(start) && rec.Date.Before(end) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateAttendanceStatus(_ context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error {
	rec, ok := f.records[key(studentID, date)]
	if !ok {
		return entity.ErrNotFound
	}
	rec.Status = status
	if notes != "" {
		rec.Notes = notes
	}
	return nil
}

func (f *fakeRepo) NextSequence(_ context.Context, cohort string) (int, error) {
	f.counters[cohort]++
	return f.counters[cohort], nil
}

func (f *fakeRepo) InsertStudent(_ context.Context, student *entity.Student) error {
	if _, ok := f.students[student.ID]; ok {
		return entity.ErrDuplicateKey
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeRepo) GetStudent(_ context.Context, id string) (*entity.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return student, nil
}

func (f *fakeRepo) AddFeeItem(_ context.Context, studentID string, fee entity.FeeItem) error {
	student, ok := f.students[studentID]
	if !ok {
		return entity.ErrNotFound
	}
	student.Fees = append(student.Fees, fee)
	return nil
}

func testService(repo *fakeRepo) *Service {
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, "STU", time.UTC, lg)
}

func TestRecordAttendance_SameDayCollides(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)
	ctx := context.Background()

	morning := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	afternoon := time.Date(2024, 3, 10, 16, 45, 0, 0, time.UTC)

	_, err := svc.RecordAttendance(ctx, "STU10001", morning, entity.StatusPresent, "", "t-1")
	require.NoError(t, err)

	// Different time of day, same calendar day: must hit the same key.
	_, err = svc.RecordAttendance(ctx, "STU10001", afternoon, entity.StatusAbsent, "", "t-1")
	assert.ErrorIs(t, err, entity.ErrDuplicateKey)

	// Next day is a fresh key.
	_, err = svc.RecordAttendance(ctx, "STU10001", morning.AddDate(0, 0, 1), entity.StatusPresent, "", "t-1")
	assert.NoError(t, err)
}

func TestRecordAttendance_NormalizesToMidnight(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	noon := time.Date(2024, 3, 10, 12, 30, 45, 0, time.UTC)
	rec, err := svc.RecordAttendance(context.Background(), "STU10001", noon, entity.StatusLeave, "sick", "t-2")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, entity.StatusLeave, rec.Status)
	assert.Equal(t, "sick", rec.Notes)
}

func TestRecordAttendance_RejectsUnknownStatus(t *testing.T) {
	svc := testService(newFakeRepo())

	_, err := svc.RecordAttendance(context.Background(), "STU10001", time.Now(), "late", "", "")
	assert.Error(t, err)
}

func TestCorrectAttendance(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)
	ctx := context.Background()

	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := svc.RecordAttendance(ctx, "STU10001", day, entity.StatusAbsent, "", "t-1")
	require.NoError(t, err)

	err = svc.CorrectAttendance(ctx, "STU10001", day, entity.StatusPresent, "arrived late")
	require.NoError(t, err)

	rec, err := svc.GetAttendance(ctx, "STU10001", day)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPresent, rec.Status)

	// Correction never creates a record.
	err = svc.CorrectAttendance(ctx, "STU10002", day, entity.StatusPresent, "")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListAttendance_InvalidWindow(t *testing.T) {
	svc := testService(newFakeRepo())

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListAttendance(context.Background(), "", start, start)
	assert.ErrorIs(t, err, entity.ErrInvalidWindow)

	_, err = svc.ListAttendance(context.Background(), "", start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, entity.ErrInvalidWindow)
}

func TestEnroll_AssignsSequentialIdentifiers(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)
	ctx := context.Background()

	first, err := svc.Enroll(ctx, "Asha", "Grade 10", "")
	require.NoError(t, err)
	second, err := svc.Enroll(ctx, "Brian", "Grade 10", "")
	require.NoError(t, err)

	assert.Equal(t, "STU10001", first.ID)
	assert.Equal(t, "STU10002", second.ID)
	assert.True(t, first.Active)
}
