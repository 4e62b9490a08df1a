package referential

import (
	"ClassLedger/entity"
	"ClassLedger/internal/lib/api/cont"
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Delete removes one record from the kind collection through the authorized
// deletion gateway. Non-admin callers get 403 without the target ever being
// looked up; admins deleting something already gone get 404.
func Delete(log *slog.Logger, handler Core, kind entity.ReferentialKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.referential")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("kind", string(kind)),
		)

		if handler == nil {
			logger.Error("deletion gateway not available")
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Deletion gateway not available"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("record id is required"))
			return
		}

		caller := cont.GetUser(r.Context())

		if err := handler.DeleteReferential(r.Context(), caller, kind, id); err != nil {
			logger.Error("deletion rejected", sl.Err(err), slog.String("id", id))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Info("record deleted", slog.String("id", id))
		render.JSON(w, r, response.Ok(nil))
	}
}
