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

// MonthlyRevenue answers the current month's collected fees in minor units.
// Zero means no paid fee lines this month, never a swallowed failure.
func MonthlyRevenue(log *slog.Logger, handler Core) http.HandlerFunc {
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

		total, err := handler.MonthlyRevenue(r.Context())
		if err != nil {
			logger.Error("failed to sum revenue", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(map[string]int64{"total": total}))
	}
}

// RevenueInWindow sums paid fees for a caller-supplied half-open window.
// Bounds are read in loc.
func RevenueInWindow(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
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

		total, err := handler.SumPaidFees(r.Context(), start, end)
		if err != nil {
			logger.Error("failed to sum revenue", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.JSON(w, r, response.Ok(map[string]int64{"total": total}))
	}
}
