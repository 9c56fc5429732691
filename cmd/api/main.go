package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"cashew-trade/internal/api/handlers"
	"cashew-trade/internal/api/middleware"
	"cashew-trade/internal/config"
	"cashew-trade/internal/recorder"
	"cashew-trade/internal/state"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to YAML config")
	flag.Parse()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("open recorder")
		}
		defer sqlRec.Close()
		rec = sqlRec
	}

	desk := state.NewDesk(logger, state.Options{
		ReportTitle: cfg.Report.Title,
		Recorder:    rec,
	})

	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	deskHandler := handlers.NewDeskHandler(desk, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", deskHandler.Evaluate)
		api.POST("/import", deskHandler.Import)
		api.GET("/state", deskHandler.State)
		api.POST("/history", deskHandler.SaveHistory)
		api.GET("/history", deskHandler.History)
		api.GET("/report", deskHandler.Report)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
