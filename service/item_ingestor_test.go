package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-fetcher/domain"
	"news-fetcher/test/mocks"
)

func TestItemIngestor_UpsertItems(t *testing.T) {
	published := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should return zero for empty input without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)
		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should insert all items when none exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)

		items := []domain.FeedItem{
			{Title: "First", Link: "https://example.com/1", GUID: "guid-1", PublishedAt: published},
			{Title: "Second", Link: "https://example.com/2", GUID: "guid-2", PublishedAt: published},
		}

		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Len(2)).Return(map[string]struct{}{}, nil)

		var inserted []*domain.NewsItem
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.NewsItem) error {
				inserted = batch
				return nil
			})

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", items)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, inserted, 2)
		assert.Equal(t, "src-1", inserted[0].SourceID)
		assert.Equal(t, "guid-1", inserted[0].GUID)
		assert.Equal(t, domain.HashGUID("guid-1"), inserted[0].GUIDHash)
		assert.NotEmpty(t, inserted[0].ID)
		assert.Equal(t, published, inserted[0].PublishedAt)
	})

	t.Run("should skip items whose hash is already stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)

		items := []domain.FeedItem{
			{Title: "Known", Link: "https://example.com/1", GUID: "guid-1", PublishedAt: published},
			{Title: "Fresh", Link: "https://example.com/2", GUID: "guid-2", PublishedAt: published},
		}

		existing := map[string]struct{}{
			domain.HashGUID("guid-1"): {},
		}
		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Any()).Return(existing, nil)

		var inserted []*domain.NewsItem
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.NewsItem) error {
				inserted = batch
				return nil
			})

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", items)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, inserted, 1)
		assert.Equal(t, "guid-2", inserted[0].GUID)
	})

	t.Run("should collapse duplicate hashes within one batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)

		items := []domain.FeedItem{
			{Title: "Same", Link: "https://example.com/1", GUID: "guid-1", PublishedAt: published},
			{Title: "Same again", Link: "https://example.com/1b", GUID: "guid-1", PublishedAt: published},
		}

		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Any()).Return(map[string]struct{}{}, nil)

		var inserted []*domain.NewsItem
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.NewsItem) error {
				inserted = batch
				return nil
			})

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", items)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, inserted, 1)
		assert.Equal(t, "Same", inserted[0].Title)
	})

	t.Run("should skip insert when every item is a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)

		items := []domain.FeedItem{
			{Title: "Known", Link: "https://example.com/1", GUID: "guid-1", PublishedAt: published},
		}

		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Any()).Return(map[string]struct{}{
			domain.HashGUID("guid-1"): {},
		}, nil)

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", items)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should fail when the hash lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)
		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", []domain.FeedItem{{GUID: "g"}})
		require.Error(t, err)
		assert.Zero(t, count)
	})

	t.Run("should fail when the batch insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNewsItemRepository(ctrl)
		repo.EXPECT().ExistingHashes(gomock.Any(), gomock.Any()).Return(map[string]struct{}{}, nil)
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		ingestor := NewItemIngestor(repo, testLogger())

		count, err := ingestor.UpsertItems(context.Background(), "src-1", []domain.FeedItem{{GUID: "g"}})
		require.Error(t, err)
		assert.Zero(t, count)
	})
}
