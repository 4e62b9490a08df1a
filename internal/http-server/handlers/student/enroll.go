package student

import (
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"ClassLedger/internal/lib/validate"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type EnrollRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Cohort   string `json:"cohort" validate:"required,min=1"`
	Guardian string `json:"guardian" validate:"omitempty"`
}

func (e *EnrollRequest) Bind(_ *http.Request) error {
	return validate.Struct(e)
}

// Enroll registers a student and assigns the next identifier in the cohort.
func Enroll(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.student")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("ledger not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Ledger not available"))
			return
		}

		var req EnrollRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("failed to bind request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		created, err := handler.EnrollStudent(r.Context(), req.Name, req.Cohort, req.Guardian)
		if err != nil {
			logger.Error("failed to enroll student", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Info("student enrolled", slog.String("student_id", created.ID))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(created))
	}
}
