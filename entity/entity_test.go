package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []AttendanceStatus{StatusPresent, StatusAbsent, StatusLeave} {
		assert.True(t, ValidStatus(s), "status: %s", s)
	}
	assert.False(t, ValidStatus("late"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Present"))
}

func TestValidKind(t *testing.T) {
	for _, k := range []ReferentialKind{KindSchedule, KindExam, KindEvent} {
		assert.True(t, ValidKind(k), "kind: %s", k)
	}
	assert.False(t, ValidKind("homework"))
	assert.False(t, ValidKind(""))
}

func TestUserAuthBind(t *testing.T) {
	valid := UserAuth{UserID: "u-1", Name: "Alice", Role: RoleTeacher, Token: "tok-1"}
	require.NoError(t, valid.Bind(nil))

	tests := []struct {
		name string
		user UserAuth
	}{
		{"missing user id", UserAuth{Role: RoleAdmin, Token: "tok-1"}},
		{"missing token", UserAuth{UserID: "u-1", Role: RoleAdmin}},
		{"missing role", UserAuth{UserID: "u-1", Token: "tok-1"}},
		{"unknown role", UserAuth{UserID: "u-1", Role: "superuser", Token: "tok-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.user.Bind(nil))
		})
	}
}

func TestUserAuthIsAdmin(t *testing.T) {
	assert.True(t, (&UserAuth{Role: RoleAdmin}).IsAdmin())

	for _, role := range []Role{RoleTeacher, RoleStudent, RoleParent, ""} {
		assert.False(t, (&UserAuth{Role: role}).IsAdmin(), "role: %s", role)
	}
}

func TestSentinelIdentity(t *testing.T) {
	sentinels := []error{
		ErrDuplicateKey,
		ErrInvalidWindow,
		ErrInvalidKind,
		ErrUnauthorized,
		ErrNotFound,
		ErrTimeout,
		ErrStorageUnavailable,
	}

	// Each sentinel survives wrapping and never matches another: the HTTP
	// layer relies on that to keep rejection statuses apart.
	for i, sentinel := range sentinels {
		wrapped := fmt.Errorf("context: %w", sentinel)
		assert.ErrorIs(t, wrapped, sentinel)

		for j, other := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(wrapped, other), "%v must not match %v", sentinel, other)
		}
	}
}
