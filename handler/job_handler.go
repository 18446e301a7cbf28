package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"news-fetcher/repository"
	"news-fetcher/service"
)

// NewsFetchJobName is the scheduler name of the recurring fetch job.
const NewsFetchJobName = "news-fetch"

// JobHandler implementation. It schedules the pipeline at the interval from
// the settings table and reschedules when the admin changes it.
type jobHandler struct {
	pipeline  service.NewsPipeline
	settings  repository.SettingsRepository
	scheduler JobScheduler
	logger    *slog.Logger

	mutex           sync.Mutex
	currentInterval time.Duration
}

// NewJobHandler creates a new job handler.
func NewJobHandler(
	pipeline service.NewsPipeline,
	settings repository.SettingsRepository,
	scheduler JobScheduler,
	logger *slog.Logger,
) JobHandler {
	return &jobHandler{
		pipeline:  pipeline,
		settings:  settings,
		scheduler: scheduler,
		logger:    logger,
	}
}

// StartNewsFetchJob starts the recurring news fetch job at the interval
// currently configured in settings.
func (h *jobHandler) StartNewsFetchJob(ctx context.Context) error {
	settings, err := h.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings for scheduling: %w", err)
	}

	h.logger.InfoContext(ctx, "starting news fetch job", "interval", settings.FetchInterval())

	return h.schedule(ctx, settings.FetchInterval())
}

// Stop stops all scheduled jobs.
func (h *jobHandler) Stop() error {
	return h.scheduler.StopAll()
}

func (h *jobHandler) schedule(ctx context.Context, interval time.Duration) error {
	h.mutex.Lock()
	h.currentInterval = interval
	h.mutex.Unlock()

	return h.scheduler.Schedule(ctx, NewsFetchJobName, interval.String(), func() error {
		return h.runOnce(ctx)
	})
}

func (h *jobHandler) runOnce(ctx context.Context) error {
	result := h.pipeline.Run(ctx)

	// The interval lives in the settings table; pick up admin changes
	// without a restart.
	h.maybeReschedule(ctx)

	if !result.Success {
		return fmt.Errorf("news fetch run failed: %s", strings.Join(result.Errors, "; "))
	}

	return nil
}

func (h *jobHandler) maybeReschedule(ctx context.Context) {
	settings, err := h.settings.Load(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "could not reload settings after run", "error", err)
		return
	}

	interval := settings.FetchInterval()

	h.mutex.Lock()
	changed := interval != h.currentInterval
	h.mutex.Unlock()

	if !changed {
		return
	}

	h.logger.InfoContext(ctx, "fetch interval changed, rescheduling", "interval", interval)

	if err := h.schedule(ctx, interval); err != nil {
		h.logger.ErrorContext(ctx, "failed to reschedule news fetch job", "error", err)
	}
}
