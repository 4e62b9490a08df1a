package referential

import (
	"ClassLedger/entity"
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

type CreateScheduleRequest struct {
	Subject string `json:"subject" validate:"required"`
	Cohort  string `json:"cohort" validate:"required"`
	Teacher string `json:"teacher" validate:"omitempty"`
	Room    string `json:"room" validate:"omitempty"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateSchedule registers one timetable occurrence. The class date is read
// in loc so the today and monthly windows pick it up on the right day.
func CreateSchedule(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(log, r)

		var req CreateScheduleRequest
		date, ok := decode(w, r, logger, &req, loc, func() string { return req.Date })
		if !ok {
			return
		}

		class := &entity.ScheduledClass{
			Subject: req.Subject,
			Cohort:  req.Cohort,
			Teacher: req.Teacher,
			Room:    req.Room,
			Date:    date,
		}
		if err := handler.CreateScheduledClass(r.Context(), class); err != nil {
			logger.Error("failed to create scheduled class", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(class))
	}
}

type CreateExamRequest struct {
	Subject string `json:"subject" validate:"required"`
	Cohort  string `json:"cohort" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateExam registers one exam record.
func CreateExam(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(log, r)

		var req CreateExamRequest
		date, ok := decode(w, r, logger, &req, loc, func() string { return req.Date })
		if !ok {
			return
		}

		exam := &entity.Exam{
			Subject: req.Subject,
			Cohort:  req.Cohort,
			Date:    date,
		}
		if err := handler.CreateExam(r.Context(), exam); err != nil {
			logger.Error("failed to create exam", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(exam))
	}
}

type CreateEventRequest struct {
	Title string `json:"title" validate:"required"`
	Venue string `json:"venue" validate:"omitempty"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateEvent registers one event record.
func CreateEvent(log *slog.Logger, handler Core, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(log, r)

		var req CreateEventRequest
		date, ok := decode(w, r, logger, &req, loc, func() string { return req.Date })
		if !ok {
			return
		}

		event := &entity.Event{
			Title: req.Title,
			Venue: req.Venue,
			Date:  date,
		}
		if err := handler.CreateEvent(r.Context(), event); err != nil {
			logger.Error("failed to create event", sl.Err(err))
			render.Status(r, response.StatusOf(err))
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(event))
	}
}

func requestLogger(log *slog.Logger, r *http.Request) *slog.Logger {
	return log.With(
		sl.Module("http.handlers.referential"),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// decode reads and validates the request body, then parses its date field
// in loc.
func decode(w http.ResponseWriter, r *http.Request, logger *slog.Logger, req interface{}, loc *time.Location, rawDate func() string) (time.Time, bool) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request body"))
		return time.Time{}, false
	}
	if err := validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request body"))
		return time.Time{}, false
	}

	date, err := time.ParseInLocation(dateLayout, rawDate(), loc)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid date"))
		return time.Time{}, false
	}
	return date, true
}
