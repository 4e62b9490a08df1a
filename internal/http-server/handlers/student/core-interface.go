package student

import (
	"context"

	"ClassLedger/entity"
)

type Core interface {
	EnrollStudent(ctx context.Context, name, cohort, guardian string) (*entity.Student, error)
	GetStudent(ctx context.Context, id string) (*entity.Student, error)
	AddFee(ctx context.Context, studentID string, fee entity.FeeItem) error
}
