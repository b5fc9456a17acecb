package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/agendaja/agenda-api/internal/config"
	dbpkg "github.com/agendaja/agenda-api/internal/db"
	"github.com/agendaja/agenda-api/internal/metrics"
	"github.com/agendaja/agenda-api/internal/middleware"
	"github.com/agendaja/agenda-api/internal/routes"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	metrics.Register()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
