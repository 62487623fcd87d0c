package database

import (
	log "log/slog"
	"twijournal/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate 按依赖顺序建表
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.UserStatistics{},
		&model.FollowEdge{},
		&model.Post{},
		&model.PostDailyCounter{},
	)
	if err != nil {
		return err
	}
	log.Info("Database schema migrated.")
	return nil
}
