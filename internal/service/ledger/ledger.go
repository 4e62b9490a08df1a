package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ClassLedger/entity"
	"ClassLedger/internal/lib/sl"
)

// Repository is the storage surface the ledger needs: atomic unique-key
// insert for attendance, point and range reads, the update-by-key correction
// path and the per-cohort enrollment counter.
type Repository interface {
	InsertAttendance(ctx context.Context, rec *entity.Attendance) error
	GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error)
	ListAttendanceInRange(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error)
	UpdateAttendanceStatus(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error

	NextSequence(ctx context.Context, cohort string) (int, error)
	InsertStudent(ctx context.Context, student *entity.Student) error
	GetStudent(ctx context.Context, id string) (*entity.Student, error)
	AddFeeItem(ctx context.Context, studentID string, fee entity.FeeItem) error
}

type Service struct {
	repo     Repository
	idPrefix string
	loc      *time.Location
	log      *slog.Logger
}

func NewService(repo Repository, idPrefix string, loc *time.Location, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		idPrefix: idPrefix,
		loc:      loc,
		log:      log.With(sl.Module("ledger-service")),
	}
}

// day truncates t to midnight in the configured window time zone. Two
// submissions on the same calendar day always land on the same key.
func (s *Service) day(t time.Time) time.Time {
	year, month, d := t.In(s.loc).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, s.loc)
}

// Enroll assigns the next identifier in the cohort and persists the student.
func (s *Service) Enroll(ctx context.Context, name, cohort, guardian string) (*entity.Student, error) {
	seq, err := s.repo.NextSequence(ctx, cohort)
	if err != nil {
		return nil, fmt.Errorf("draw enrollment sequence: %w", err)
	}

	id, err := GenerateStudentID(s.idPrefix, cohort, seq)
	if err != nil {
		return nil, err
	}

	student := entity.NewStudent(id, name, cohort, guardian)
	if err := s.repo.InsertStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	s.log.With(
		slog.String("student_id", id),
		slog.String("cohort", cohort),
	).Info("student enrolled")

	return student, nil
}

// RecordAttendance creates the single day record for (student, date).
// A second write for an occupied key fails with ErrDuplicateKey; corrections
// go through CorrectAttendance instead.
func (s *Service) RecordAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes, markedBy string) (*entity.Attendance, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("unknown attendance status %q", status)
	}

	rec := entity.NewAttendance(studentID, s.day(date), status, notes, markedBy)
	if err := s.repo.InsertAttendance(ctx, rec); err != nil {
		return nil, err
	}

	s.log.With(
		slog.String("student_id", studentID),
		slog.String("date", rec.Date.Format("2006-01-02")),
		slog.String("status", string(status)),
	).Debug("attendance recorded")

	return rec, nil
}

// CorrectAttendance updates the status of an existing day record.
func (s *Service) CorrectAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error {
	if !entity.ValidStatus(status) {
		return fmt.Errorf("unknown attendance status %q", status)
	}
	return s.repo.UpdateAttendanceStatus(ctx, studentID, s.day(date), status, notes)
}

// GetAttendance returns the record for one student on one calendar day.
func (s *Service) GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error) {
	return s.repo.GetAttendance(ctx, studentID, s.day(date))
}

// ListAttendance returns records with date in the half-open window
// [start, end), optionally narrowed to one student.
func (s *Service) ListAttendance(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error) {
	if !end.After(start) {
		return nil, entity.ErrInvalidWindow
	}
	return s.repo.ListAttendanceInRange(ctx, studentID, start, end)
}

// GetStudent resolves a student by identifier.
func (s *Service) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	return s.repo.GetStudent(ctx, id)
}

// AddFee appends a fee line to the student's embedded fee list.
func (s *Service) AddFee(ctx context.Context, studentID string, fee entity.FeeItem) error {
	if fee.Amount < 0 {
		return fmt.Errorf("fee amount must be non-negative, got %d", fee.Amount)
	}
	return s.repo.AddFeeItem(ctx, studentID, fee)
}
