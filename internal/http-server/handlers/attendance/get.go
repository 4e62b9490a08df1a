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

// Get returns the day record for ?student_id=&date=YYYY-MM-DD.
// The date is read in loc so it lands on the same midnight Record stored.
func Get(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
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

		studentID := r.URL.Query().Get("student_id")
		rawDate := r.URL.Query().Get("date")
		if studentID == "" || rawDate == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("student_id and date are required"))
			return
		}

		date, err := time.ParseInLocation(dateLayout, rawDate, loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid date"))
			return
		}

		rec, err := handler.GetAttendance(r.Context(), studentID, date)
		if err != nil {
			logger.Error("failed to get attendance", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(rec))
	}
}
