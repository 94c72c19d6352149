package main

import (
	"fmt"
	"os"
	"time"

	"localpro-backend/config"
	"localpro-backend/realtime"
	"localpro-backend/routes"
	"localpro-backend/services"
	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		zlog.Info().Msg("No .env file found")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := config.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate database")
	}

	if err := utils.EnsureUploadDir(cfg.UploadDir); err != nil {
		zlog.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("failed to create upload dir")
	}

	hub := realtime.NewHub()
	notifier := services.NewNotifierService(db, cfg)

	stats := services.NewStatsService(db, hub, cfg.StatsBroadcastCron)
	if err := stats.Start(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to start stats broadcaster")
	}
	defer stats.Stop()

	r := routes.SetupRouter(cfg, db, hub, notifier)
	printRoutes(r)

	zlog.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
