package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	_ "lemmy-ingestion/docs"
	"lemmy-ingestion/internal/app"
)

// @title Lemmy Ingestion API
// @version 1.0
// @description This API provides endpoints to ingest data from a Lemmy instance, including posts, comments, user activity, communities and search.
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host localhost:8080
// @BasePath /

func main() {
	application, err := app.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	application.Logger.Info().Str("port", application.Config.ServerPort).Msg("server started")
	application.Logger.Info().Msg("swagger documentation available at /swagger/index.html")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.Logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Echo.Shutdown(ctx); err != nil {
		application.Logger.Error().Err(err).Msg("server shutdown error")
	}

	application.Logger.Info().Msg("server stopped")
}
