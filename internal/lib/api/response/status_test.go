package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ClassLedger/entity"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{entity.ErrDuplicateKey, http.StatusConflict},
		{entity.ErrInvalidWindow, http.StatusBadRequest},
		{entity.ErrInvalidKind, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", entity.ErrInvalidKind, "homework"), http.StatusBadRequest},
		{entity.ErrUnauthorized, http.StatusForbidden},
		{entity.ErrNotFound, http.StatusNotFound},
		{entity.ErrTimeout, http.StatusGatewayTimeout},
		{entity.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", entity.ErrDuplicateKey), http.StatusConflict},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "error: %v", tt.err)
	}
}

func TestEnvelope(t *testing.T) {
	ok := Ok(map[string]int{"count": 2})
	assert.Equal(t, StatusOk, ok.Status)
	assert.Empty(t, ok.Error)

	fail := Error("boom")
	assert.Equal(t, StatusError, fail.Status)
	assert.Equal(t, "boom", fail.Error)
	assert.Nil(t, fail.Data)
}
