package student

import (
	"ClassLedger/entity"
	"ClassLedger/internal/lib/api/response"
	"ClassLedger/internal/lib/sl"
	"ClassLedger/internal/lib/validate"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type AddFeeRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      int64  `json:"amount" validate:"gte=0"` // minor units
	Status      string `json:"status" validate:"required,oneof=Paid Pending Waived"`
	PaymentDate string `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

// AddFee appends one fee line to a student's embedded fee list. The payment
// date is read in loc so revenue windows pick it up on the right day.
func AddFee(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
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

		id := chi.URLParam(r, "id")

		var req AddFeeRequest
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

		paymentDate, err := time.ParseInLocation("2006-01-02", req.PaymentDate, loc)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid payment date"))
			return
		}

		fee := entity.FeeItem{
			Description: req.Description,
			Amount:      req.Amount,
			Status:      entity.FeeStatus(req.Status),
			PaymentDate: paymentDate,
		}

		if err := handler.AddFee(r.Context(), id, fee); err != nil {
			logger.Error("failed to add fee", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		logger.Debug("fee added", slog.String("student_id", id), slog.Int64("amount", req.Amount))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(nil))
	}
}
