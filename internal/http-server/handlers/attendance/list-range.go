package attendance

import (
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ListRange returns records with date in [start, end), end exclusive.
// ?start=YYYY-MM-DD&end=YYYY-MM-DD&student_id= (student optional). Bounds
// are read in loc, matching the midnights stored records carry.
func ListRange(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
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

		start, err := time.ParseInLocation(dateLayout, r.URL.Query().Get("start"), loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid start date"))
			return
		}
		end, err := time.ParseInLocation(dateLayout, r.URL.Query().Get("end"), loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid end date"))
			return
		}

		records, err := handler.ListAttendance(r.Context(), r.URL.Query().Get("student_id"), start, end)
		if err != nil {
			logger.Error("failed to list attendance", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Debug("attendance listed", slog.Int("count", len(records)))
		render.JSON(w, r, response.Ok(records))
	}
}
