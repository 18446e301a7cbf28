package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"news-fetcher/domain"
)

// SourceFetcher implementation.
type sourceFetcher struct {
	client   HTTPClient
	parser   FeedParser
	ingestor ItemIngestor
	logger   *slog.Logger
}

// NewSourceFetcher creates a new source fetcher.
func NewSourceFetcher(client HTTPClient, parser FeedParser, ingestor ItemIngestor, logger *slog.Logger) SourceFetcher {
	return &sourceFetcher{
		client:   client,
		parser:   parser,
		ingestor: ingestor,
		logger:   logger,
	}
}

// FetchSource fetches, parses and upserts one source. Transport, HTTP-status
// and parse failures go into the result and leave the run going; a storage
// failure from the ingestor comes back as the error and aborts the run.
func (s *sourceFetcher) FetchSource(ctx context.Context, source domain.Source) (domain.FetchSourceResult, error) {
	result := domain.FetchSourceResult{
		SourceID:   source.ID,
		SourceName: source.Name,
	}

	s.logger.InfoContext(ctx, "fetching source", "source", source.Name, "url", source.URL)

	resp, err := s.client.Get(ctx, source.URL)
	if err != nil {
		s.logger.WarnContext(ctx, "source fetch failed", "source", source.Name, "error", err)
		result.Err = err
		return result, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Err = fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		s.logger.WarnContext(ctx, "source returned error status", "source", source.Name, "status", resp.StatusCode)
		return result, nil
	}

	// The body is read as UTF-8 text regardless of the declared encoding.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = fmt.Errorf("read feed body: %w", err)
		return result, nil
	}

	items, err := s.parser.Parse(string(body), source.URL)
	if err != nil {
		s.logger.WarnContext(ctx, "feed parse failed", "source", source.Name, "error", err)
		result.Err = err
		return result, nil
	}

	count, err := s.ingestor.UpsertItems(ctx, source.ID, items)
	if err != nil {
		// Storage failures are structural, not feed-specific.
		return result, err
	}

	result.NewItemsCount = count

	s.logger.InfoContext(ctx, "source processed",
		"source", source.Name,
		"parsed_items", len(items),
		"new_items", count,
	)

	return result, nil
}
