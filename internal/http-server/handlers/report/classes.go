package report

import (
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

// ClassesToday answers the number of classes scheduled for the current day.
// The window is recomputed per request, so the count flips correctly at the
// day boundary.
func ClassesToday(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.report")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("report service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Report service not available"))
			return
		}

		count, err := handler.CountClassesToday(r.Context())
		if err != nil {
			logger.Error("failed to count classes", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(map[string]int64{"count": count}))
	}
}

// ClassesInWindow counts classes for a caller-supplied half-open window,
// ?start=YYYY-MM-DD&end=YYYY-MM-DD. Bounds are read in loc, the zone the
// derived day and month windows use.
func ClassesInWindow(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.report")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("report service not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Report service not available"))
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

		count, err := handler.CountClassesInWindow(r.Context(), start, end)
		if err != nil {
			logger.Error("failed to count classes", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(map[string]int64{"count": count}))
	}
}
