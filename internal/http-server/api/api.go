package api

import (
	"ClassLedger/entity"
	"ClassLedger/internal/config"
	"ClassLedger/internal/http-server/handlers/attendance"
	"ClassLedger/internal/http-server/handlers/errors"
	"ClassLedger/internal/http-server/handlers/referential"
	"ClassLedger/internal/http-server/handlers/report"
	"ClassLedger/internal/http-server/handlers/student"
	"ClassLedger/internal/http-server/middleware/authenticate"
	"ClassLedger/internal/http-server/middleware/timeout"
	"ClassLedger/internal/lib/sl"
	"ClassLedger/internal/ws"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	attendance.Core
	student.Core
	report.Core
	referential.Core
}

// New builds the router and serves it until the listener fails. loc is the
// zone caller-supplied dates are read in; it must match the zone the
// services derive their day and month windows in.
func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub, loc *time.Location) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(5))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	// Live feed clients carry their token in the query string, so the
	// upgrade endpoint does its own auth instead of the bearer middleware.
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, handler, log, w, r)
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(authenticate.New(log, handler))

		v1.Route("/students", func(r chi.Router) {
			r.Post("/enroll", student.Enroll(log, handler))
			r.Get("/{id}", student.Get(log, handler))
			r.Post("/{id}/fees", student.AddFee(log, handler, loc))
		})
		v1.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendance.Record(log, handler, loc))
			r.Put("/", attendance.Correct(log, handler, loc))
			r.Get("/", attendance.Get(log, handler, loc))
			r.Get("/range", attendance.ListRange(log, handler, loc))
		})
		v1.Route("/reports", func(r chi.Router) {
			r.Get("/classes/today", report.ClassesToday(log, handler))
			r.Get("/classes", report.ClassesInWindow(log, handler, loc))
			r.Get("/revenue/month", report.MonthlyRevenue(log, handler))
			r.Get("/revenue", report.RevenueInWindow(log, handler, loc))
			r.Get("/dashboard", report.Dashboard(log, handler))
		})
		v1.Route("/schedule", func(r chi.Router) {
			r.Post("/", referential.CreateSchedule(log, handler, loc))
			r.Delete("/{id}", referential.Delete(log, handler, entity.KindSchedule))
		})
		v1.Route("/exams", func(r chi.Router) {
			r.Post("/", referential.CreateExam(log, handler, loc))
			r.Delete("/{id}", referential.Delete(log, handler, entity.KindExam))
		})
		v1.Route("/events", func(r chi.Router) {
			r.Post("/", referential.CreateEvent(log, handler, loc))
			r.Delete("/{id}", referential.Delete(log, handler, entity.KindEvent))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
