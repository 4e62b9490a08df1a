package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"ClassLedger/entity"
)

func TestStorageError_ServerSelectionFailure(t *testing.T) {
	m := &MongoDB{}

	// The driver surfaces an unreachable deployment as a server selection
	// error; callers must see the retryable sentinel, not a generic failure.
	driverErr := topology.ServerSelectionError{Wrapped: errors.New("connection refused")}

	err := m.storageError(driverErr)
	assert.ErrorIs(t, err, entity.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, entity.ErrTimeout)
}

func TestStorageError_CallerDeadline(t *testing.T) {
	m := &MongoDB{}

	err := m.storageError(fmt.Errorf("operation aborted: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, entity.ErrTimeout)
}

func TestStorageError_OtherErrorsPassThrough(t *testing.T) {
	m := &MongoDB{}

	assert.NoError(t, m.storageError(errors.New("write concern violated")))
}

func TestFindError(t *testing.T) {
	m := &MongoDB{}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no documents", mongo.ErrNoDocuments, entity.ErrNotFound},
		{"deadline", context.DeadlineExceeded, entity.ErrTimeout},
		{
			"server selection",
			topology.ServerSelectionError{Wrapped: errors.New("no reachable servers")},
			entity.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.findError(tt.err), tt.want)
		})
	}

	// Anything else keeps its identity inside a descriptive wrap.
	cause := errors.New("cursor exhausted")
	err := m.findError(cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, entity.ErrStorageUnavailable)
}
