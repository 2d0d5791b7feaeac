package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samiti-app/backend/internal/auth"
	"github.com/samiti-app/backend/internal/config"
	v1 "github.com/samiti-app/backend/internal/controllers/v1"
	"github.com/samiti-app/backend/internal/ledger"
	"github.com/samiti-app/backend/internal/report"
	"github.com/samiti-app/backend/internal/router"
	"github.com/samiti-app/backend/internal/storage"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()

	// Create the data directory
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := storage.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer store.Close()

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.Controller{
		Store:         store,
		Ledger:        ledger.New(store),
		Sessions:      auth.NewSessions(cfg.SessionTTL),
		Reports:       report.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
		ReportTimeout: cfg.ReportTimeout,
	}

	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
