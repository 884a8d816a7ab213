package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authentity "videotube_backend/internal/feature/auth/domain/entity"
	"videotube_backend/internal/feature/channel/domain/entity"
)

// UserFinder looks up users for the channel aggregations.
// Implemented by the auth feature's user adapter.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
	FindByUsername(ctx context.Context, username string) (*authentity.User, error)
}

// SubscriptionRepository abstracts persistence of subscription edges.
type SubscriptionRepository interface {
	// Create inserts the edge, ErrAlreadySubscribed when it exists.
	Create(ctx context.Context, sub *entity.Subscription) error

	// Delete removes the edge, ErrNotSubscribed when it is absent.
	Delete(ctx context.Context, subscriberID, channelID uint) error

	// CountByChannel counts edges pointing at the channel (its subscribers).
	CountByChannel(ctx context.Context, channelID uint) (int64, error)

	// CountBySubscriber counts edges originating from the user
	// (channels they are subscribed to).
	CountBySubscriber(ctx context.Context, subscriberID uint) (int64, error)

	// Exists reports whether subscriberID follows channelID.
	Exists(ctx context.Context, subscriberID, channelID uint) (bool, error)
}

// VideoRepository abstracts read access to video records.
type VideoRepository interface {
	// FindByIDs returns the videos for the given IDs, missing IDs skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Video, error)

	// Exists reports whether the video exists.
	Exists(ctx context.Context, id uint) (bool, error)
}

// WatchHistoryRepository abstracts the ordered watch history rows.
type WatchHistoryRepository interface {
	// Append adds an entry at the end of the user's history.
	Append(ctx context.Context, e *entity.WatchEntry) error

	// ListByUser returns the user's entries in watch order.
	ListByUser(ctx context.Context, userID uint) ([]entity.WatchEntry, error)
}

// PlaylistRepository abstracts playlist persistence.
type PlaylistRepository interface {
	Create(ctx context.Context, p *entity.Playlist) error
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Playlist, error)
}

// ChannelProfile is the whitelisted projection returned for a channel
// page. Password and token fields never enter this path.
type ChannelProfile struct {
	FullName                  string `json:"fullName"`
	Username                  string `json:"username"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	Email                     string `json:"email"`
}

// VideoOwner is the projected subset of the video owner's record.
type VideoOwner struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// WatchHistoryItem is one resolved entry of the watch history: the full
// video record with its owner collapsed to a projected object.
type WatchHistoryItem struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	VideoFile   string     `json:"videoFile"`
	Thumbnail   string     `json:"thumbnail"`
	Duration    float64    `json:"duration"`
	Views       int64      `json:"views"`
	Owner       VideoOwner `json:"owner"`
	WatchedAt   time.Time  `json:"watchedAt"`
}

// channelUsecase implements the channel-profile, subscription and
// watch-history logic.
type channelUsecase struct {
	users     UserFinder
	subs      SubscriptionRepository
	videos    VideoRepository
	history   WatchHistoryRepository
	playlists PlaylistRepository
}

// NewChannelUsecase creates a new instance of channelUsecase.
func NewChannelUsecase(users UserFinder, subs SubscriptionRepository, videos VideoRepository,
	history WatchHistoryRepository, playlists PlaylistRepository) *channelUsecase {
	return &channelUsecase{users: users, subs: subs, videos: videos, history: history, playlists: playlists}
}

// GetChannelProfile aggregates the channel page for the given username as
// seen by viewerID. An unknown username is the not-found case.
func (u *channelUsecase) GetChannelProfile(ctx context.Context, username string, viewerID uint) (*ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, ErrChannelNotFound
	}

	channel, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrChannelNotFound
	}

	subscribers, err := u.subs.CountByChannel(ctx, channel.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}
	subscribedTo, err := u.subs.CountBySubscriber(ctx, channel.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	isSubscribed, err := u.subs.Exists(ctx, viewerID, channel.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	return &ChannelProfile{
		FullName:                  channel.FullName,
		Username:                  channel.Username,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
		Avatar:                    channel.Avatar,
		CoverImage:                channel.CoverImage,
		Email:                     channel.Email,
	}, nil
}

// GetWatchHistory resolves the user's ordered watch entries to full video
// records and projects each owner. Two application-level join steps: watch
// entries to videos, then videos to owners.
func (u *channelUsecase) GetWatchHistory(ctx context.Context, userID uint) ([]WatchHistoryItem, error) {
	entries, err := u.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}
	if len(entries) == 0 {
		return []WatchHistoryItem{}, nil
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.VideoID)
	}
	videos, err := u.videos.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load videos: %w", err)
	}
	byID := make(map[uint]entity.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	owners := make(map[uint]VideoOwner)
	items := make([]WatchHistoryItem, 0, len(entries))
	for _, e := range entries {
		video, ok := byID[e.VideoID]
		if !ok {
			// Video deleted since it was watched; drop the entry.
			continue
		}

		owner, ok := owners[video.OwnerID]
		if !ok {
			user, err := u.users.FindByID(ctx, video.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("failed to load video owner: %w", err)
			}
			owner = VideoOwner{FullName: user.FullName, Username: user.Username, Avatar: user.Avatar}
			owners[video.OwnerID] = owner
		}

		items = append(items, WatchHistoryItem{
			ID:          video.ID,
			Title:       video.Title,
			Description: video.Description,
			VideoFile:   video.VideoFile,
			Thumbnail:   video.Thumbnail,
			Duration:    video.Duration,
			Views:       video.Views,
			Owner:       owner,
			WatchedAt:   e.CreatedAt,
		})
	}
	return items, nil
}

// Subscribe creates a subscriber edge from viewerID to the named channel.
func (u *channelUsecase) Subscribe(ctx context.Context, viewerID uint, channelUsername string) error {
	channel, err := u.users.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(channelUsername)))
	if err != nil {
		return ErrChannelNotFound
	}
	if channel.ID == viewerID {
		return ErrSelfSubscription
	}
	return u.subs.Create(ctx, &entity.Subscription{SubscriberID: viewerID, ChannelID: channel.ID})
}

// Unsubscribe removes the edge from viewerID to the named channel.
func (u *channelUsecase) Unsubscribe(ctx context.Context, viewerID uint, channelUsername string) error {
	channel, err := u.users.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(channelUsername)))
	if err != nil {
		return ErrChannelNotFound
	}
	return u.subs.Delete(ctx, viewerID, channel.ID)
}

// AddWatchEntry appends a video to the user's watch history.
// Re-watching appends another row; order is preserved.
func (u *channelUsecase) AddWatchEntry(ctx context.Context, userID, videoID uint) error {
	exists, err := u.videos.Exists(ctx, videoID)
	if err != nil {
		return fmt.Errorf("failed to check video: %w", err)
	}
	if !exists {
		return ErrVideoNotFound
	}
	return u.history.Append(ctx, &entity.WatchEntry{UserID: userID, VideoID: videoID})
}

// CreatePlaylist creates an empty playlist owned by ownerID.
func (u *channelUsecase) CreatePlaylist(ctx context.Context, ownerID uint, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(description) == "" {
		return nil, errors.New("name and description are required")
	}
	p := &entity.Playlist{OwnerID: ownerID, Name: name, Description: strings.TrimSpace(description)}
	if err := u.playlists.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlaylists returns the playlists owned by the user.
func (u *channelUsecase) ListPlaylists(ctx context.Context, ownerID uint) ([]entity.Playlist, error) {
	return u.playlists.FindByOwner(ctx, ownerID)
}
