package gate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClassLedger/entity"
)

type fakeRepo struct {
	records map[string]bool // kind/id -> exists
	calls   int
}

func newFakeRepo(ids ...string) *fakeRepo {
	records := make(map[string]bool)
	for _, id := range ids {
		records[id] = true
	}
	return &fakeRepo{records: records}
}

func (f *fakeRepo) DeleteReferential(_ context.Context, kind entity.ReferentialKind, id string) error {
	f.calls++
	key := string(kind) + "/" + id
	if !f.records[key] {
		return entity.ErrNotFound
	}
	delete(f.records, key)
	return nil
}

func testService(repo *fakeRepo) *Service {
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, lg)
}

func admin() *entity.UserAuth {
	return &entity.UserAuth{UserID: "u-1", Role: entity.RoleAdmin}
}

func TestDelete_NonAdminShortCircuits(t *testing.T) {
	repo := newFakeRepo("exam/ex-1")
	svc := testService(repo)

	for _, role := range []entity.Role{entity.RoleTeacher, entity.RoleStudent, entity.RoleParent} {
		caller := &entity.UserAuth{UserID: "u-2", Role: role}

		// Existing target.
		err := svc.Delete(context.Background(), caller, entity.KindExam, "ex-1")
		assert.ErrorIs(t, err, entity.ErrUnauthorized)

		// Missing target: same answer, existence must not leak.
		err = svc.Delete(context.Background(), caller, entity.KindExam, "ex-missing")
		assert.ErrorIs(t, err, entity.ErrUnauthorized)
	}

	// The store is never touched for unauthorized callers.
	assert.Equal(t, 0, repo.calls)
}

func TestDelete_AnonymousIsUnauthorized(t *testing.T) {
	repo := newFakeRepo("event/ev-1")
	svc := testService(repo)

	err := svc.Delete(context.Background(), nil, entity.KindEvent, "ev-1")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
	assert.Equal(t, 0, repo.calls)
}

func TestDelete_AdminOnMissingTarget(t *testing.T) {
	svc := testService(newFakeRepo())

	err := svc.Delete(context.Background(), admin(), entity.KindSchedule, "sch-404")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDelete_AdminExecutesThenNotFound(t *testing.T) {
	repo := newFakeRepo("schedule/sch-1")
	svc := testService(repo)

	err := svc.Delete(context.Background(), admin(), entity.KindSchedule, "sch-1")
	require.NoError(t, err)

	// Deletion is irreversible: the second attempt finds nothing.
	err = svc.Delete(context.Background(), admin(), entity.KindSchedule, "sch-1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDelete_UnknownKind(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	err := svc.Delete(context.Background(), admin(), "homework", "hw-1")
	assert.ErrorIs(t, err, entity.ErrInvalidKind)
	assert.NotErrorIs(t, err, entity.ErrUnauthorized)
	assert.Equal(t, 0, repo.calls)
}
