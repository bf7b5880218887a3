package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/router"
	"github.com/iliyamo/event-ticketing/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Env == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logrus.WithError(err).Fatal("create data dir")
	}

	st := store.New()
	if err := st.LoadJSON(cfg.JSONPath()); err != nil {
		logrus.WithError(err).Fatal("load event data")
	}
	logrus.WithField("events", len(st.ListEvents())).Info("event data loaded")

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e,
		handler.NewEventHandler(st),
		handler.NewBookingHandler(st),
		handler.NewOrderHandler(st),
		handler.NewFeedbackHandler(st),
		handler.NewExportHandler(st, cfg.JSONPath(), cfg.XMLPath()),
		config.LoadCacheConfig(), rdb)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
