package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-fetcher/domain"
	"news-fetcher/test/mocks"
)

func TestNotificationFanout_FanOut(t *testing.T) {
	productive := []domain.FetchSourceResult{
		{SourceID: "src-1", SourceName: "Tech News", NewItemsCount: 3},
		{SourceID: "src-2", SourceName: "World News", NewItemsCount: 1},
	}

	t.Run("should create one notification per user and productive source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		users := []domain.UserExclusions{
			{UserID: "user-1"},
			{UserID: "user-2"},
		}

		var created []*domain.Notification
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.Notification) error {
				created = append(created, batch...)
				return nil
			})

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, users)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
		require.Len(t, created, 4)

		first := created[0]
		assert.Equal(t, "user-1", first.UserID)
		assert.Equal(t, domain.NotificationTypeNews, first.Type)
		assert.Equal(t, "3 new items from Tech News", first.Title)
		assert.Equal(t, "Fresh articles from Tech News are ready to read.", first.Message)
		assert.Equal(t, domain.NotificationMetadata{
			SourceID:   "src-1",
			SourceName: "Tech News",
			ItemCount:  3,
		}, first.Metadata)
		assert.NotEmpty(t, first.ID)
	})

	t.Run("should use singular wording for a single item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		var created []*domain.Notification
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.Notification) error {
				created = batch
				return nil
			})

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		_, err := fanout.FanOut(context.Background(),
			[]domain.FetchSourceResult{{SourceID: "src-2", SourceName: "World News", NewItemsCount: 1}},
			[]domain.UserExclusions{{UserID: "user-1"}},
		)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "1 new item from World News", created[0].Title)
	})

	t.Run("should honor per-user source exclusions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		users := []domain.UserExclusions{
			{UserID: "user-1", ExcludedSourceIDs: map[string]struct{}{"src-1": {}}},
			{UserID: "user-2"},
		}

		var created []*domain.Notification
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.Notification) error {
				created = batch
				return nil
			})

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, users)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		for _, n := range created {
			if n.UserID == "user-1" {
				assert.NotEqual(t, "src-1", n.Metadata.SourceID)
			}
		}
	})

	t.Run("should skip unproductive sources", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		results := []domain.FetchSourceResult{
			{SourceID: "src-1", SourceName: "Quiet", NewItemsCount: 0},
			{SourceID: "src-2", SourceName: "Broken", NewItemsCount: 2, Err: errors.New("HTTP 500")},
		}

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), results, []domain.UserExclusions{{UserID: "user-1"}})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should do nothing when there are no users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)
		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should do nothing when every pair is excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		users := []domain.UserExclusions{
			{UserID: "user-1", ExcludedSourceIDs: map[string]struct{}{"src-1": {}, "src-2": {}}},
		}

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, users)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("should chunk inserts by batch size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)

		users := []domain.UserExclusions{
			{UserID: "user-1"},
			{UserID: "user-2"},
			{UserID: "user-3"},
		}

		// 3 users x 2 sources = 6 notifications, batch size 4 -> 4 + 2
		var sizes []int
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []*domain.Notification) error {
				sizes = append(sizes, len(batch))
				return nil
			}).Times(2)

		fanout := NewNotificationFanout(repo, 4, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, users)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
		assert.Equal(t, []int{4, 2}, sizes)
	})

	t.Run("should fail when the insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockNotificationRepository(ctrl)
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		fanout := NewNotificationFanout(repo, 1000, testLogger())

		count, err := fanout.FanOut(context.Background(), productive, []domain.UserExclusions{{UserID: "user-1"}})
		require.Error(t, err)
		assert.Zero(t, count)
	})
}
