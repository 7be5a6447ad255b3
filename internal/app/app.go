package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/palpite-server/internal/catalog"
	catalogsqlite "github.com/vovakirdan/palpite-server/internal/catalog/sqlite"
	"github.com/vovakirdan/palpite-server/internal/config"
	"github.com/vovakirdan/palpite-server/internal/core"
	"github.com/vovakirdan/palpite-server/internal/guess"
	transporthttp "github.com/vovakirdan/palpite-server/internal/transport/http"
)

// App wires together the game registry and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	registry        *core.Registry
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info().Int("categories", len(cat)).Msg("catalog loaded")

	registry := core.NewRegistry(cat, settingsFromConfig(&cfg.Game), logger)
	server := transporthttp.NewServer(registry, cat, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		registry:        registry,
		log:             logger,
	}, nil
}

// Run starts the reaper and HTTP server and blocks until context
// cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.registry.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}

// loadCatalog reads the word catalog from the configured SQLite word
// pack, or from the JSON file otherwise.
func loadCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.DatabasePath != "" {
		store, err := catalogsqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadCatalog(context.Background())
	}
	return catalog.LoadFile(cfg.CategoriesPath)
}

func settingsFromConfig(game *config.Game) core.Settings {
	s := core.DefaultSettings()
	s.RoundDuration = game.RoundDuration
	s.FinalWarningLead = game.FinalWarningLead
	s.RoundsPerMatch = game.RoundsPerMatch
	s.AnswersPerRound = game.AnswersPerRound
	s.RoomCapacity = game.RoomCapacity
	s.IdleTimeout = game.IdleTimeout
	s.ReapInterval = game.ReapInterval
	s.InterRoundDelay = game.InterRoundDelay
	s.RestartDelay = game.RestartDelay
	s.CooldownWindow = game.CooldownWindow
	s.LeaderboardSize = game.LeaderboardSize
	s.Matcher = guess.Matcher{
		Similarity:    game.NearSimilarity,
		MinNearLength: game.NearMinLength,
	}
	return s
}
