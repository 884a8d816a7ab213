// Package db opens the PostgreSQL connection used by all repositories.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"videotube_backend/internal/app/config"
	authentity "videotube_backend/internal/feature/auth/domain/entity"
	channelentity "videotube_backend/internal/feature/channel/domain/entity"
)

// OpenDB connects to PostgreSQL with a retry window and runs the schema
// migration when migrate is true. TranslateError is enabled so unique
// violations surface as gorm.ErrDuplicatedKey in the adapters.
func OpenDB(cfg config.DBConfig, migrate bool) *gorm.DB {
	dsn := cfg.DSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if migrate {
		if err := db.AutoMigrate(
			&authentity.User{},
			&channelentity.Subscription{},
			&channelentity.Video{},
			&channelentity.WatchEntry{},
			&channelentity.Playlist{},
			&channelentity.PlaylistVideo{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
