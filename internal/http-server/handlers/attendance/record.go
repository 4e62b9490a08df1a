package attendance

import (
	"ClassLedger/entity"
	"ClassLedger/internal/lib/api/cont"
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"ClassLedger/internal/lib/validate"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type RecordRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent leave"`
	Notes     string `json:"notes" validate:"omitempty"`
}

func (r *RecordRequest) Bind(_ *http.Request) error {
	return validate.Struct(r)
}

// Record creates the single day record for (student, date). A second write
// for the same key answers 409 so the caller can switch to the correction
// endpoint instead. Dates are read in loc, the zone all day windows use.
func Record(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.attendance")

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

		var req RecordRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("failed to bind request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		date, err := time.ParseInLocation(dateLayout, req.Date, loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date"))
			return
		}

		markedBy := ""
		if caller := cont.GetUser(r.Context()); caller != nil {
			markedBy = caller.UserID
		}

		rec, err := handler.RecordAttendance(r.Context(), req.StudentID, date, entity.AttendanceStatus(req.Status), req.Notes, markedBy)
		if err != nil {
			logger.Error("failed to record attendance", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Debug("attendance recorded",
			slog.String("student_id", req.StudentID),
			slog.String("date", req.Date),
		)
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(rec))
	}
}

type CorrectRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent leave"`
	Notes     string `json:"notes" validate:"omitempty"`
}

// Correct updates the status of an existing day record by its key.
func Correct(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.attendance")

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

		var req CorrectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if err := validate.Struct(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		date, err := time.ParseInLocation(dateLayout, req.Date, loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date"))
			return
		}

		err = handler.CorrectAttendance(r.Context(), req.StudentID, date, entity.AttendanceStatus(req.Status), req.Notes)
		if err != nil {
			logger.Error("failed to correct attendance", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(nil))
	}
}
