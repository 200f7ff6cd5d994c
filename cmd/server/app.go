package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/social-spark/internal/action"
	"github.com/phrazzld/social-spark/internal/config"
	"github.com/phrazzld/social-spark/internal/events"
	"github.com/phrazzld/social-spark/internal/flow"
	"github.com/phrazzld/social-spark/internal/platform/gemini"
	"github.com/phrazzld/social-spark/internal/platform/migrations"
	"github.com/phrazzld/social-spark/internal/platform/mistral"
	"github.com/phrazzld/social-spark/internal/post"
	"github.com/phrazzld/social-spark/internal/store"
)

// janitorInterval is how often idle sessions are swept.
const janitorInterval = time.Minute

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	generationLogs store.GenerationLogStore
	eventEmitter   *events.InMemoryEventEmitter
	actions        *action.Service
	boards         *post.Boards
	posts          *post.Service
}

// newApplication builds every component from cfg. Providers whose API key is
// missing are left unwired; the action layer reports that at call time.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	app.db = db
	if db != nil {
		if err := migrations.Run(ctx, db, cfg.Database.Driver, migrations.CommandUp, logger); err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}
	app.generationLogs = newGenerationLogStore(cfg.Database.Driver, db, logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(store.NewRecorder(app.generationLogs, logger))

	flows, err := newFlows(ctx, cfg, logger)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	app.actions, err = action.NewService(cfg, flows, app.eventEmitter, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create action service: %w", err)
	}

	app.boards = post.NewBoards(
		time.Duration(cfg.Posts.SessionTTLMinutes)*time.Minute,
		cfg.Posts.MaxPostsPerBoard,
		logger,
	)
	app.posts = post.NewService(app.actions, app.boards, cfg.Generation.DefaultLanguage, logger)

	logger.Info("application initialized",
		"text_provider", flows.Text != nil,
		"image_provider", flows.Image != nil)
	return app, nil
}

// newFlows wires each generation flow whose provider credentials are present.
func newFlows(ctx context.Context, cfg *config.Config, logger *slog.Logger) (action.Flows, error) {
	var flows action.Flows

	if cfg.LLM.MistralAPIKey != "" {
		text, err := mistral.NewTextGenerator(logger, cfg.LLM)
		if err != nil {
			return flows, fmt.Errorf("failed to initialize text provider: %w", err)
		}
		flows.Text = flow.NewTextFlow(text, logger)
	}

	if cfg.LLM.GeminiAPIKey != "" {
		models, err := gemini.NewModels(ctx, cfg.LLM)
		if err != nil {
			return flows, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		primary, err := gemini.NewImageGenerator(models, cfg.LLM.ImageModel, logger)
		if err != nil {
			return flows, fmt.Errorf("failed to initialize image provider: %w", err)
		}
		secondary, err := gemini.NewImagenGenerator(models, cfg.LLM.SecondaryImageModel, logger)
		if err != nil {
			return flows, fmt.Errorf("failed to initialize secondary image provider: %w", err)
		}
		flows.Image = flow.NewImageFlow(primary, logger)
		flows.Dual = flow.NewDualImageFlow(primary, secondary, logger)
	}

	return flows, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go app.boards.RunJanitor(janitorCtx, janitorInterval)

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
		app.db = nil
	}
}
