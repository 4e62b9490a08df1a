package main

import (
	"ClassLedger/bot"
	"ClassLedger/impl/core"
	"ClassLedger/internal/config"
	"ClassLedger/internal/database"
	"ClassLedger/internal/http-server/api"
	"ClassLedger/internal/lib/logger"
	"ClassLedger/internal/lib/sl"
	"ClassLedger/internal/service/gate"
	"ClassLedger/internal/service/ledger"
	"ClassLedger/internal/service/report"
	"ClassLedger/internal/ws"
	"flag"
	"log/slog"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			// Error-level records double as admin alerts
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")

			go func() {
				if err := tgBot.Start(); err != nil {
					lg.Error("telegram bot error", sl.Err(err))
				}
			}()
		}
	}

	lg.Info("starting classledger", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	loc, err := time.LoadLocation(conf.Ledger.TimeZone)
	if err != nil {
		lg.Error("invalid window time zone, falling back to UTC",
			slog.String("time_zone", conf.Ledger.TimeZone), sl.Err(err))
		loc = time.UTC
	}

	handler := core.New(lg)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
		return
	}
	handler.SetRepository(db)
	lg.With(
		slog.String("host", conf.Mongo.Host),
		slog.String("port", conf.Mongo.Port),
		slog.String("database", conf.Mongo.Database),
	).Info("mongo client initialized")

	ledgerService := ledger.NewService(db, conf.Ledger.IDPrefix, loc, lg)
	handler.SetLedgerService(ledgerService)

	reportService := report.NewService(db, loc, conf.Ledger.QueryTimeout, lg)
	handler.SetReportService(reportService)

	gateService := gate.NewService(db, lg)
	handler.SetGateService(gateService)

	if tgBot != nil {
		handler.SetNotifier(tgBot)
	}

	hub := ws.NewHub(lg.With(sl.Module("ws.hub")))
	go hub.Run()
	handler.SetHub(hub)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub, loc)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
