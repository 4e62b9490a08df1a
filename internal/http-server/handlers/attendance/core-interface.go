package attendance

import (
	"context"
	"time"

	"ClassLedger/entity"
)

type Core interface {
	RecordAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes, markedBy string) (*entity.Attendance, error)
	CorrectAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error
	GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error)
	ListAttendance(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error)
}
