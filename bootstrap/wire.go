package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-fetcher/config"
	"news-fetcher/driver"
	"news-fetcher/feed"
	"news-fetcher/handler"
	"news-fetcher/repository"
	"news-fetcher/service"
	"news-fetcher/utils/logger"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	DBPool        *pgxpool.Pool
	Config        *config.Config
	JobHandler    handler.JobHandler
	HealthHandler handler.HealthHandler
	FetchHandler  *handler.FetchHandler
	Scheduler     handler.JobScheduler
	ContextLogger *logger.ContextLogger
	Logger        *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, contextLogger *logger.ContextLogger) (*Dependencies, func(), error) {
	log := contextLogger.WithContext(ctx)

	dbPool, err := driver.Init(ctx)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	// Repositories
	sourceRepo := repository.NewSourceRepository(dbPool, log)
	settingsRepo := repository.NewSettingsRepository(dbPool, log)
	itemRepo := repository.NewNewsItemRepository(dbPool, log)
	notificationRepo := repository.NewNotificationRepository(dbPool, log)
	userRepo := repository.NewUserRepository(dbPool, log)
	pipelineLock := repository.NewPipelineLock(dbPool, log)

	// Services
	clientFactory := service.NewHTTPClientFactory(cfg, log)
	parser := feed.NewParser(log)
	ingestor := service.NewItemIngestor(itemRepo, log)
	fetcher := service.NewSourceFetcher(clientFactory.CreateFeedClient(), parser, ingestor, log)
	fanout := service.NewNotificationFanout(notificationRepo, cfg.Pipeline.NotificationBatchSize, log)
	cleaner := service.NewRetentionCleaner(notificationRepo, log)

	pipeline := service.NewNewsPipeline(
		settingsRepo,
		sourceRepo,
		userRepo,
		pipelineLock,
		fetcher,
		fanout,
		cleaner,
		cfg.Pipeline.FetchConcurrency,
		log,
	)

	// Handlers
	scheduler := handler.NewJobScheduler(log)
	jobHandler := handler.NewJobHandler(pipeline, settingsRepo, scheduler, log)
	healthHandler := handler.NewHealthHandler(dbPool, log)
	fetchHandler := handler.NewFetchHandler(pipeline, scheduler, log)

	cleanup := func() {
		dbPool.Close()
	}

	return &Dependencies{
		DBPool:        dbPool,
		Config:        cfg,
		JobHandler:    jobHandler,
		HealthHandler: healthHandler,
		FetchHandler:  fetchHandler,
		Scheduler:     scheduler,
		ContextLogger: contextLogger,
		Logger:        log,
	}, cleanup, nil
}
