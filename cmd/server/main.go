package main

import (
	"context"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"videotube_backend/internal/app/config"
	"videotube_backend/internal/app/di"
	"videotube_backend/internal/app/router"
	accounthandler "videotube_backend/internal/feature/account/transport/handler"
	accountusecase "videotube_backend/internal/feature/account/usecase"
	authadapters "videotube_backend/internal/feature/auth/adapters"
	authhandler "videotube_backend/internal/feature/auth/transport/handler"
	authusecase "videotube_backend/internal/feature/auth/usecase"
	channeladapters "videotube_backend/internal/feature/channel/adapters"
	channelhandler "videotube_backend/internal/feature/channel/transport/handler"
	channelusecase "videotube_backend/internal/feature/channel/usecase"
	infradb "videotube_backend/internal/platform/db"
	infrahttp "videotube_backend/internal/platform/http"
	jwtmw "videotube_backend/internal/platform/jwt"
	"videotube_backend/internal/platform/media"
	"videotube_backend/internal/platform/moderation"
	infraredis "videotube_backend/internal/platform/redis"
	"videotube_backend/internal/shared/uploads"
)

func main() {
	cfg := config.Load()

	if cfg.Token.AccessSecret == "" || cfg.Token.RefreshSecret == "" {
		slog.Warn("token secrets are not set, set strong secrets in production")
	}

	// db
	db := infradb.OpenDB(cfg.DB, cfg.RunMigrations)

	// Redis (optional, the throttle falls back to in-memory)
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable, using in-process throttle")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Image moderation (optional)
	var moderator uploads.Moderator
	if cfg.ModerationEnabled {
		if m, err := moderation.NewVisionModerator(context.Background()); err != nil {
			slog.Warn("image moderation unavailable", "error", err)
		} else {
			moderator = m
			defer func() {
				if err := m.Close(); err != nil {
					slog.Error("failed to close vision client", "error", err)
				}
			}()
		}
	}

	// Media host client
	uploader := media.NewUploader(cfg.Media, infrahttp.NewHTTPClient(cfg.Media.Timeout))

	// Repositories
	userRepo := authadapters.NewUserGorm(db)
	subRepo := channeladapters.NewSubscriptionGorm(db)
	videoRepo := channeladapters.NewVideoGorm(db)
	historyRepo := channeladapters.NewWatchHistoryGorm(db)
	playlistRepo := channeladapters.NewPlaylistGorm(db)

	// Tokens and guard
	tokenGen := jwtmw.NewGenerator(cfg.Token)
	guard := jwtmw.AuthRequired(tokenGen, userRepo)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	accountUC := accountusecase.NewAccountUsecase(userRepo)
	channelUC := channelusecase.NewChannelUsecase(userRepo, subRepo, videoRepo, historyRepo, playlistRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC, uploader, moderator, cfg.Token)
	accountH := accounthandler.NewAccountHandler(accountUC, uploader, moderator)
	channelH := channelhandler.NewChannelHandler(channelUC)

	// Router
	r := router.NewRouter(authH, accountH, channelH, guard, di.NewAuthLimiter(rdb), cfg.CORSOrigin)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
