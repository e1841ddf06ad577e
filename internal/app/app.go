package app

import (
	"context"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"github.com/shortsync/shortsync/config"
	"github.com/shortsync/shortsync/internal/controller/http"
	"github.com/shortsync/shortsync/internal/controller/http/middleware"
	"github.com/shortsync/shortsync/internal/entity"
	"github.com/shortsync/shortsync/internal/infrastructure/metadata"
	"github.com/shortsync/shortsync/internal/infrastructure/platform"
	"github.com/shortsync/shortsync/internal/infrastructure/shortener"
	"github.com/shortsync/shortsync/internal/infrastructure/storage"
	"github.com/shortsync/shortsync/internal/usecase"
	"github.com/shortsync/shortsync/pkg/logger"
)

type App struct {
	server     *fiber.App
	serverAddr string

	store metadata.Store
	log   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	app := &App{
		log: log,
	}

	server := fiber.New()
	server.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	server.Use(middleware.RequestID(log))
	server.Use(middleware.Logger(log.SubLogger("http_requests")))

	app.server = server
	app.serverAddr = cfg.Server.Addr

	backup, err := storage.NewFileStorage(cfg.Storage.Filepath)
	if err != nil {
		return nil, log.Wrap(err, "init backup storage")
	}
	log.Info(ctx).Msgf("Initialized backup storage @ %s", cfg.Storage.Filepath)

	var store metadata.Store
	store, err = metadata.NewPostgresStore(ctx, cfg.PostgreSQL)
	if err != nil {
		log.Error(ctx, err).Msg("init postgres metadata store")
		// Fallback to in-mem store
		store = metadata.NewInMemStore(backup)
		log.Info(ctx).Msgf("Initialized metadata store @ in-mem")
	} else {
		log.Info(ctx).Msgf("Initialized metadata store @ postgres")
	}
	app.store = store

	err = store.Restore(ctx)
	if err != nil {
		return nil, log.Wrap(err, "restore from backup")
	}

	var client shortener.Client
	if cfg.Shortener.BaseAPIURL != "" && cfg.Shortener.APIKey != "" {
		client = shortener.NewHTTPClient(cfg.Shortener)
		log.Info(ctx).Msgf("Initialized shortener client @ %s", cfg.Shortener.BaseAPIURL)
	} else {
		// Enough to construct the engine; syncing stays disabled until
		// the shortener settings are provided
		client = shortener.NewMock()
		log.Warn(ctx).Msg("Shortener API URL/key not configured, syncing disabled")
	}

	resolver := platform.NewResolver(cfg.Platform.SiteURL)
	source := platform.NewSource(cfg.Platform)

	aggregator := usecase.NewTagAggregator(resolver.SiteHost, platform.ActingUser)

	hooks := usecase.Hooks{
		Permalink:    resolver.Permalink,
		SanitizeSlug: resolver.SanitizeSlug,
		SiteHost:     resolver.SiteHost,
		CurrentUser:  platform.ActingUser,
		PublishedCheck: func(post entity.Post) bool {
			return post.Live
		},
		FilterTags: aggregator.Augment,
	}

	syncer := usecase.NewSaveSync(
		cfg.Shortener,
		cfg.Sync,
		client,
		store,
		source,
		hooks,
		nil,
		log.SubLogger("save_sync"),
	)

	http.NewWebhookController(server, syncer, store, log.SubLogger("webhook"))

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx).Msgf("Listening on %s", a.serverAddr)
	if err := a.server.Listen(a.serverAddr); err != nil && err != nethttp.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	err := a.store.Backup(ctx)
	if err != nil {
		return a.log.Wrap(err, "save metadata to backup")
	}

	err = a.store.Close(ctx)
	if err != nil {
		return a.log.Wrap(err, "close metadata store")
	}

	err = a.server.Shutdown()
	if err != nil {
		return a.log.Wrap(err, "shut down server")
	}

	return nil
}
