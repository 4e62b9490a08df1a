package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ClassLedger/entity"
	"ClassLedger/internal/lib/sl"
)

// Repository covers the storage operations the core calls directly: caller
// identity lookup and creation of referential records. Everything else goes
// through the services.
type Repository interface {
	GetUserByToken(ctx context.Context, token string) (*entity.UserAuth, error)
	InsertScheduledClass(ctx context.Context, class *entity.ScheduledClass) error
	InsertExam(ctx context.Context, exam *entity.Exam) error
	InsertEvent(ctx context.Context, event *entity.Event) error
}

// LedgerService owns identifier assignment and the one-record-per-day
// attendance ledger.
type LedgerService interface {
	Enroll(ctx context.Context, name, cohort, guardian string) (*entity.Student, error)
	RecordAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes, markedBy string) (*entity.Attendance, error)
	CorrectAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error
	GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error)
	ListAttendance(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error)
	GetStudent(ctx context.Context, id string) (*entity.Student, error)
	AddFee(ctx context.Context, studentID string, fee entity.FeeItem) error
}

// ReportService recomputes windowed counts and sums from the store.
type ReportService interface {
	CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error)
	CountClassesToday(ctx context.Context) (int64, error)
	SumPaidFees(ctx context.Context, start, end time.Time) (int64, error)
	MonthlyRevenue(ctx context.Context) (int64, error)
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}

// GateService authorizes and performs referential deletions.
type GateService interface {
	Delete(ctx context.Context, caller *entity.UserAuth, kind entity.ReferentialKind, id string) error
}

// Notifier delivers out-of-band notifications. The core never depends on
// delivery succeeding.
type Notifier interface {
	SendMessage(msg string)
}

// Hub pushes attendance events to connected dashboard clients.
type Hub interface {
	BroadcastAttendance(rec entity.Attendance)
}

type Core struct {
	repo   Repository
	ledger LedgerService
	report ReportService
	gate   GateService
	notify Notifier
	hub    Hub
	log    *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetLedgerService(s LedgerService) {
	c.ledger = s
}

func (c *Core) SetReportService(s ReportService) {
	c.report = s
}

func (c *Core) SetGateService(s GateService) {
	c.gate = s
}

func (c *Core) SetNotifier(n Notifier) {
	c.notify = n
}

func (c *Core) SetHub(h Hub) {
	c.hub = h
}

// AuthenticateByToken resolves a bearer token to the caller identity.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	return c.repo.GetUserByToken(context.Background(), token)
}

func (c *Core) EnrollStudent(ctx context.Context, name, cohort, guardian string) (*entity.Student, error) {
	return c.ledger.Enroll(ctx, name, cohort, guardian)
}

// RecordAttendance writes the day record and, on success, fans the event out
// to connected dashboards. Broadcast failures never affect the write.
func (c *Core) RecordAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes, markedBy string) (*entity.Attendance, error) {
	rec, err := c.ledger.RecordAttendance(ctx, studentID, date, status, notes, markedBy)
	if err != nil {
		return nil, err
	}
	if c.hub != nil {
		c.hub.BroadcastAttendance(*rec)
	}
	return rec, nil
}

func (c *Core) CorrectAttendance(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error {
	return c.ledger.CorrectAttendance(ctx, studentID, date, status, notes)
}

func (c *Core) GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error) {
	return c.ledger.GetAttendance(ctx, studentID, date)
}

func (c *Core) ListAttendance(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error) {
	return c.ledger.ListAttendance(ctx, studentID, start, end)
}

func (c *Core) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	return c.ledger.GetStudent(ctx, id)
}

func (c *Core) AddFee(ctx context.Context, studentID string, fee entity.FeeItem) error {
	return c.ledger.AddFee(ctx, studentID, fee)
}

func (c *Core) CountClassesToday(ctx context.Context) (int64, error) {
	return c.report.CountClassesToday(ctx)
}

func (c *Core) CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	return c.report.CountClassesInWindow(ctx, start, end)
}

func (c *Core) MonthlyRevenue(ctx context.Context) (int64, error) {
	return c.report.MonthlyRevenue(ctx)
}

func (c *Core) SumPaidFees(ctx context.Context, start, end time.Time) (int64, error) {
	return c.report.SumPaidFees(ctx, start, end)
}

func (c *Core) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	return c.report.Dashboard(ctx)
}

// DeleteReferential routes a deletion request through the gateway and alerts
// the admin channel on success.
func (c *Core) DeleteReferential(ctx context.Context, caller *entity.UserAuth, kind entity.ReferentialKind, id string) error {
	if err := c.gate.Delete(ctx, caller, kind, id); err != nil {
		return err
	}
	if c.notify != nil {
		c.notify.SendMessage("deleted " + string(kind) + " " + id)
	}
	return nil
}

func (c *Core) CreateScheduledClass(ctx context.Context, class *entity.ScheduledClass) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	return c.repo.InsertScheduledClass(ctx, class)
}

func (c *Core) CreateExam(ctx context.Context, exam *entity.Exam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}
	return c.repo.InsertExam(ctx, exam)
}

func (c *Core) CreateEvent(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return c.repo.InsertEvent(ctx, event)
}
