package referential

import (
	"context"

	"ClassLedger/entity"
)

type Core interface {
	DeleteReferential(ctx context.Context, caller *entity.UserAuth, kind entity.ReferentialKind, id string) error
	CreateScheduledClass(ctx context.Context, class *entity.ScheduledClass) error
	CreateExam(ctx context.Context, exam *entity.Exam) error
	CreateEvent(ctx context.Context, event *entity.Event) error
}
