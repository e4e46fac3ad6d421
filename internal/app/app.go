package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"langshare/internal/github"
	internalhttp "langshare/internal/http"
	"langshare/internal/languages"
	"langshare/internal/shared/configs"
	"langshare/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.NewWithWriter(config.Log.Level, config.Log.Format, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "langshare").
		Logger()

	languageService := NewLanguageService(ctx, config)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(languageService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// NewLanguageService wires the GitHub client, repository fetcher and share options from config.
// ctx scopes the underlying oauth2 HTTP client.
func NewLanguageService(ctx context.Context, config *configs.Config) languages.LanguageService {
	client := github.NewClient(ctx, github.ClientConfig{
		Endpoint: config.GitHub.Endpoint,
		Token:    config.GitHub.Token,
		Timeout:  time.Duration(config.GitHub.RequestTimeout) * time.Second,
	})
	repositoryFetcher := github.NewRepositoryFetcher(client, github.FetcherOptions{
		PageSize:         config.GitHub.PageSize,
		LanguagesPerRepo: config.GitHub.LanguagesPerRepo,
	})

	return languages.NewLanguageService(repositoryFetcher, languages.ShareOptions{
		Precision: config.Shares.Precision,
		MaxPasses: config.Shares.MaxPasses,
	})
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting langshare service on port %d (log_level=%s, github_endpoint=%s, precision=%d, max_passes=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.GitHub.Endpoint,
			app.config.Shares.Precision,
			app.config.Shares.MaxPasses)

	return app.server.ListenAndServe()
}

// ShutdownTimeout is how long Shutdown should be given to drain in-flight requests.
func (app *App) ShutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeout) * time.Second
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
