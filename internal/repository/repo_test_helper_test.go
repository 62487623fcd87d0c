package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"twijournal/internal/model"
	"twijournal/internal/pkg/database"
	"twijournal/internal/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.NewGormLogger().LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// newConcurrentTestDB 文件库 + WAL，多个连接的事务真正并发，写锁冲突时按 busy_timeout 等待
func newConcurrentTestDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=10000", filepath.Join(t.TempDir(), "twijournal.db"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.NewGormLogger().LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	sqlDB.SetMaxIdleConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func mustCreateUser(t *testing.T, repo UserRepo, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func mustStatistics(t *testing.T, db *gorm.DB, userID int64) model.UserStatistics {
	t.Helper()
	var statistics model.UserStatistics
	require.NoError(t, db.Where("user_id = ?", userID).First(&statistics).Error)
	return statistics
}

// requireCountersMatchEdges 每个用户的关注计数与边表基数一致
func requireCountersMatchEdges(t *testing.T, db *gorm.DB, userIDs []int64) {
	t.Helper()
	for _, id := range userIDs {
		var followees, followers int64
		require.NoError(t, db.Model(&model.FollowEdge{}).Where("follower_id = ?", id).Count(&followees).Error)
		require.NoError(t, db.Model(&model.FollowEdge{}).Where("followee_id = ?", id).Count(&followers).Error)

		statistics := mustStatistics(t, db, id)
		require.Equal(t, followees, statistics.FolloweeCounter, "followee_counter of user %d", id)
		require.Equal(t, followers, statistics.FollowerCounter, "follower_counter of user %d", id)
	}
}

func originalPost(userID int64, text string, at time.Time) *model.Post {
	return &model.Post{
		PostType:    model.PostTypeOriginal,
		Text:        &text,
		PublishedBy: userID,
		PublishedAt: at,
	}
}
