package gate

import (
	"context"
	"fmt"
	"log/slog"

	"ClassLedger/entity"
	"ClassLedger/internal/lib/sl"
)

// Repository exposes the single mutation the gateway performs. DeleteOne is
// atomic per record and reports ErrNotFound on a zero affected count.
type Repository interface {
	DeleteReferential(ctx context.Context, kind entity.ReferentialKind, id string) error
}

// Service is the authorized deletion gateway for schedule items, exams and
// events. Each request walks Requested -> AuthorizationChecked ->
// {Executed, Rejected}; both outcomes are terminal and retries belong to the
// caller.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(sl.Module("gate-service")),
	}
}

// Delete removes the record id from the kind collection, admin callers only.
// The role check runs before any store access: an unauthorized caller learns
// nothing about whether the target exists. Deletion is irreversible and does
// not cascade.
func (s *Service) Delete(ctx context.Context, caller *entity.UserAuth, kind entity.ReferentialKind, id string) error {
	logger := s.log.With(
		slog.String("kind", string(kind)),
		slog.String("id", id),
	)

	if caller == nil || !caller.IsAdmin() {
		logger.Warn("deletion rejected, caller is not admin")
		return entity.ErrUnauthorized
	}

	if !entity.ValidKind(kind) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidKind, kind)
	}

	if err := s.repo.DeleteReferential(ctx, kind, id); err != nil {
		return err
	}

	logger.With(slog.String("deleted_by", caller.UserID)).Info("referential record deleted")
	return nil
}
