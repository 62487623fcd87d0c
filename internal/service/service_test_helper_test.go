package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/database"
	"twijournal/internal/pkg/logger"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/repository"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db        *gorm.DB
	mr        *miniredis.Miniredis
	cfg       config.FeedConfig
	users     UserService
	follows   UserFollowService
	posts     *PostServiceImpl
	feeds     FeedService
	userRepo  repository.UserRepo
	clockTime time.Time
}

func newTestEnv(t *testing.T, tweaks ...func(cfg *config.FeedConfig)) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_busy_timeout=5000", name)

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

	mr := miniredis.RunT(t)
	redis.UseClient(redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()}))

	env := &testEnv{db: db, mr: mr, cfg: config.Default().Feed, clockTime: testNow}
	for _, tweak := range tweaks {
		tweak(&env.cfg)
	}

	env.userRepo = repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	env.users = NewUserService(env.userRepo, env.cfg)
	env.follows = NewUserFollowService(env.users, repository.NewUserFollowRepo(db), env.cfg)
	env.posts = NewPostService(env.users, env.follows, postRepo, repository.NewPostDailyCounterRepo(db), env.cfg).
		WithClock(func() time.Time { return env.clockTime })
	env.feeds = NewFeedService(env.users, env.follows, postRepo, env.cfg)
	return env
}

func (e *testEnv) mustRegister(t *testing.T, username string) *dto.UserDTO {
	t.Helper()
	user, err := e.users.Register(context.Background(), &dto.CreateUserDTO{Username: username})
	require.NoError(t, err)
	return user
}

func (e *testEnv) mustPost(t *testing.T, username, text string) *dto.PostDTO {
	t.Helper()
	post, err := e.posts.CreatePost(context.Background(), username, &dto.CreatePostDTO{
		PostType: "original",
		Text:     &text,
	})
	require.NoError(t, err)
	return post
}

func (e *testEnv) view(t *testing.T, username string) dto.UserStatisticsDTO {
	t.Helper()
	view, err := e.users.GetUserView(context.Background(), username)
	require.NoError(t, err)
	return view.Statistics
}
