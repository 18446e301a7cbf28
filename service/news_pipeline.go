package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-fetcher/domain"
	"news-fetcher/orchestrator"
	"news-fetcher/repository"
)

// NewsPipeline implementation: the run orchestrator. One Run covers the whole
// scheduled invocation: settings → sources → fetch/parse/upsert per source →
// notification fan-out → retention cleanup → run metadata.
type newsPipeline struct {
	settings         repository.SettingsRepository
	sources          repository.SourceRepository
	users            repository.UserRepository
	lock             repository.PipelineLock
	fetcher          SourceFetcher
	fanout           NotificationFanout
	cleaner          RetentionCleaner
	fetchConcurrency int
	logger           *slog.Logger
	now              func() time.Time
}

// NewNewsPipeline creates the run orchestrator. fetchConcurrency 1 preserves
// the sequential reference behavior.
func NewNewsPipeline(
	settings repository.SettingsRepository,
	sources repository.SourceRepository,
	users repository.UserRepository,
	lock repository.PipelineLock,
	fetcher SourceFetcher,
	fanout NotificationFanout,
	cleaner RetentionCleaner,
	fetchConcurrency int,
	logger *slog.Logger,
) NewsPipeline {
	if fetchConcurrency < 1 {
		fetchConcurrency = 1
	}

	return &newsPipeline{
		settings:         settings,
		sources:          sources,
		users:            users,
		lock:             lock,
		fetcher:          fetcher,
		fanout:           fanout,
		cleaner:          cleaner,
		fetchConcurrency: fetchConcurrency,
		logger:           logger,
		now:              time.Now,
	}
}

// Run executes one full pipeline invocation. Fatal failures (settings or
// source loads, any storage write) are caught at this boundary and folded
// into a result with success=false, zeroed counters and the failure as the
// sole error. Per-source fetch/parse failures never abort the run.
func (p *newsPipeline) Run(ctx context.Context) (result *domain.FetchNewsResult) {
	start := p.now()

	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "news fetch run panicked", "panic", r)
			result = p.failedResult(start, fmt.Errorf("panic: %v", r))
		}
	}()

	result, err := p.run(ctx, start)
	if err != nil {
		p.logger.ErrorContext(ctx, "news fetch run failed", "error", err)
		return p.failedResult(start, err)
	}

	return result
}

func (p *newsPipeline) run(ctx context.Context, start time.Time) (*domain.FetchNewsResult, error) {
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)

	log.InfoContext(ctx, "news fetch run starting")

	release, acquired, err := p.lock.TryAcquire(ctx)
	if err != nil {
		return nil, err
	}

	if !acquired {
		// Another run is mid-flight; skipping avoids double-firing
		// notifications for the same new items.
		log.WarnContext(ctx, "skipping run", "reason", domain.ErrRunInProgress)
		return p.emptyResult(start), nil
	}
	defer release()

	settings, err := p.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ErrSettingsLoad, err)
	}

	sources, err := p.sources.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ErrSourcesLoad, err)
	}

	if len(sources) == 0 {
		// An empty source list is not an error; there is nothing to do.
		log.InfoContext(ctx, "no active sources configured")
		return p.emptyResult(start), nil
	}

	result := &domain.FetchNewsResult{
		Success: true,
		Errors:  []string{},
	}

	stage := orchestrator.Stage[domain.Source, domain.FetchSourceResult]{
		Name:        "fetch-source",
		Concurrency: p.fetchConcurrency,
		Process:     p.fetcher.FetchSource,
	}

	stageResults := orchestrator.Run(ctx, stage, sources)

	fetchResults := make([]domain.FetchSourceResult, 0, len(sources))

	for _, sr := range stageResults {
		if sr.Err != nil {
			return nil, fmt.Errorf("source %q: %w", sources[sr.Index].Name, sr.Err)
		}

		res := sr.Value
		fetchResults = append(fetchResults, res)

		result.SourcesProcessed++
		result.TotalNewItems += res.NewItemsCount

		if res.Err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", res.SourceName, res.Err))
		}
	}

	users, err := p.users.ListWithExclusions(ctx)
	if err != nil {
		return nil, err
	}

	created, err := p.fanout.FanOut(ctx, fetchResults, users)
	if err != nil {
		return nil, err
	}
	result.NotificationsCreated = created

	deleted, err := p.cleaner.Cleanup(ctx, settings.NotificationRetentionDays)
	if err != nil {
		return nil, err
	}
	result.NotificationsDeleted = deleted

	if err := p.settings.UpdateLastFetchAt(ctx, start); err != nil {
		return nil, err
	}

	result.Success = len(result.Errors) == 0
	result.DurationMs = p.now().Sub(start).Milliseconds()

	log.InfoContext(ctx, "news fetch run finished",
		"success", result.Success,
		"sources_processed", result.SourcesProcessed,
		"total_new_items", result.TotalNewItems,
		"notifications_created", result.NotificationsCreated,
		"notifications_deleted", result.NotificationsDeleted,
		"error_count", len(result.Errors),
		"duration_ms", result.DurationMs,
	)

	return result, nil
}

func (p *newsPipeline) emptyResult(start time.Time) *domain.FetchNewsResult {
	return &domain.FetchNewsResult{
		Success:    true,
		Errors:     []string{},
		DurationMs: p.now().Sub(start).Milliseconds(),
	}
}

func (p *newsPipeline) failedResult(start time.Time, err error) *domain.FetchNewsResult {
	return &domain.FetchNewsResult{
		Success:    false,
		Errors:     []string{err.Error()},
		DurationMs: p.now().Sub(start).Milliseconds(),
	}
}
