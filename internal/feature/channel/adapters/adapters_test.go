package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"videotube_backend/internal/feature/channel/domain/entity"
	"videotube_backend/internal/feature/channel/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production configuration so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&entity.Subscription{},
		&entity.Video{},
		&entity.WatchEntry{},
		&entity.Playlist{},
		&entity.PlaylistVideo{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestSubscriptionGorm_Create(t *testing.T) {
	t.Run("inserts the edge", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionGorm(db)

		err := repo.Create(context.Background(), &entity.Subscription{SubscriberID: 1, ChannelID: 2})
		assert.NoError(t, err)

		exists, err := repo.Exists(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate edge maps to ErrAlreadySubscribed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionGorm(db)

		require.NoError(t, repo.Create(context.Background(), &entity.Subscription{SubscriberID: 1, ChannelID: 2}))
		err := repo.Create(context.Background(), &entity.Subscription{SubscriberID: 1, ChannelID: 2})

		assert.ErrorIs(t, err, usecase.ErrAlreadySubscribed)
	})

	t.Run("reverse edge is a distinct row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionGorm(db)

		require.NoError(t, repo.Create(context.Background(), &entity.Subscription{SubscriberID: 1, ChannelID: 2}))
		assert.NoError(t, repo.Create(context.Background(), &entity.Subscription{SubscriberID: 2, ChannelID: 1}))
	})
}

func TestSubscriptionGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionGorm(db)
	require.NoError(t, repo.Create(context.Background(), &entity.Subscription{SubscriberID: 1, ChannelID: 2}))

	assert.NoError(t, repo.Delete(context.Background(), 1, 2))

	exists, err := repo.Exists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 2), usecase.ErrNotSubscribed)
}

func TestSubscriptionGorm_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionGorm(db)
	ctx := context.Background()

	// Channel 2 has subscribers 1, 3, 4. User 1 follows channels 2 and 5.
	for _, edge := range []entity.Subscription{
		{SubscriberID: 1, ChannelID: 2},
		{SubscriberID: 3, ChannelID: 2},
		{SubscriberID: 4, ChannelID: 2},
		{SubscriberID: 1, ChannelID: 5},
	} {
		e := edge
		require.NoError(t, repo.Create(ctx, &e))
	}

	subscribers, err := repo.CountByChannel(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), subscribers)

	subscribedTo, err := repo.CountBySubscriber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), subscribedTo)

	none, err := repo.CountByChannel(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestVideoGorm(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVideoGorm(db)
	ctx := context.Background()

	seed := []entity.Video{
		{OwnerID: 2, Title: "first", VideoFile: "v1.mp4", Thumbnail: "t1.png", Duration: 12.5},
		{OwnerID: 2, Title: "second", VideoFile: "v2.mp4", Thumbnail: "t2.png", Duration: 34.0},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	t.Run("FindByIDs skips missing IDs", func(t *testing.T) {
		videos, err := repo.FindByIDs(ctx, []uint{seed[0].ID, 999, seed[1].ID})
		require.NoError(t, err)
		assert.Len(t, videos, 2)
	})

	t.Run("FindByIDs with no IDs", func(t *testing.T) {
		videos, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, seed[0].ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestWatchHistoryGorm(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWatchHistoryGorm(db)
	ctx := context.Background()

	// User 1 watches 10, 20, then 10 again. User 2's history stays separate.
	for _, e := range []entity.WatchEntry{
		{UserID: 1, VideoID: 10},
		{UserID: 1, VideoID: 20},
		{UserID: 2, VideoID: 30},
		{UserID: 1, VideoID: 10},
	} {
		entry := e
		require.NoError(t, repo.Append(ctx, &entry))
	}

	entries, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []uint{10, 20, 10}, []uint{entries[0].VideoID, entries[1].VideoID, entries[2].VideoID})

	empty, err := repo.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPlaylistGorm(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlaylistGorm(db)
	ctx := context.Background()

	first := &entity.Playlist{OwnerID: 1, Name: "watch later", Description: "queue"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	second := &entity.Playlist{OwnerID: 1, Name: "favorites", Description: "best of"}
	require.NoError(t, repo.Create(ctx, second))

	other := &entity.Playlist{OwnerID: 2, Name: "other", Description: "not mine"}
	require.NoError(t, repo.Create(ctx, other))

	playlists, err := repo.FindByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, playlists, 2)
	for _, p := range playlists {
		assert.Equal(t, uint(1), p.OwnerID)
	}
}
