package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lemmy-ingestion/internal/client"
	"lemmy-ingestion/internal/config"
	"lemmy-ingestion/internal/ingest"
	"lemmy-ingestion/internal/parser"
	"lemmy-ingestion/internal/router"
	"lemmy-ingestion/pkg/httpclient"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service ingest.Service
	Client  *client.Client
	Logger  zerolog.Logger
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if cfg.ProxyURL != "" {
		logger.Info().Str("proxy", httpclient.MaskProxyURL(cfg.ProxyURL)).Msg("routing requests through proxy")
	}

	session, err := httpclient.New(httpclient.Config{
		ProxyURL:  cfg.ProxyURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP session: %w", err)
	}

	lemmyClient, err := buildClient(cfg, session, logger)
	if err != nil {
		return nil, err
	}

	lemmyParser := parser.NewLemmyParser()
	svc := ingest.NewService(lemmyClient, lemmyParser, cfg.DefaultPostLimit, cfg.DefaultCommentLimit, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, svc)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: svc,
		Client:  lemmyClient,
		Logger:  logger,
	}, nil
}

// buildClient constructs the Lemmy client, performing a startup login when
// credentials are configured and no token was supplied directly.
func buildClient(cfg *config.Config, session *http.Client, logger zerolog.Logger) (*client.Client, error) {
	opts := []client.Option{client.WithLogger(logger)}

	if cfg.AuthToken != "" {
		return client.New(session, cfg.LemmyBaseURL, append(opts, client.WithAuth(cfg.AuthToken))...), nil
	}

	if cfg.Username == "" {
		return client.New(session, cfg.LemmyBaseURL, opts...), nil
	}

	anonymous := client.New(session, cfg.LemmyBaseURL, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	token, err := anonymous.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in to Lemmy instance: %w", err)
	}
	logger.Info().Str("username", cfg.Username).Msg("logged in to Lemmy instance")

	return client.New(session, cfg.LemmyBaseURL, append(opts, client.WithAuth(token))...), nil
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	a.Echo.Server.ReadTimeout = a.Config.ReadTimeout
	a.Echo.Server.WriteTimeout = a.Config.WriteTimeout
	return a.Echo.Start(":" + port)
}
