package response

import (
	"errors"
	"net/http"

	"ClassLedger/entity"
)

// StatusOf maps the engine's sentinel errors onto distinct HTTP statuses so
// callers can tell rejection reasons apart without parsing messages.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, entity.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, entity.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
