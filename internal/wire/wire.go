package wire

import (
	"twijournal/internal/api"
	"twijournal/internal/api/config"
	"twijournal/internal/api/handler"
	"twijournal/internal/job"
	"twijournal/internal/pkg/cron"
	"twijournal/internal/pkg/kafka"
	"twijournal/internal/repository"
	"twijournal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	ReconcileJob *job.CounterReconcileJob
	UserService  service.UserService
}

// BuildServices 只构建领域服务，命令行工具复用
func BuildServices(db *gorm.DB, cfg *config.Config) (service.UserService, *job.CounterReconcileJob) {
	userRepo := repository.NewUserRepo(db)
	statisticsRepo := repository.NewUserStatisticsRepo(db)

	userService := service.NewUserService(userRepo, cfg.Feed)
	statisticsService := service.NewStatisticsService(userRepo, statisticsRepo)
	return userService, job.NewCounterReconcileJob(statisticsService, cfg.Reconcile.BatchSize)
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	postRepo := repository.NewPostRepository(db)
	dailyCounterRepo := repository.NewPostDailyCounterRepo(db)

	userService, reconcileJob := BuildServices(db, cfg)
	userFollowService := service.NewUserFollowService(userService, userFollowRepo, cfg.Feed)
	postService := service.NewPostService(userService, userFollowService, postRepo, dailyCounterRepo, cfg.Feed)
	feedService := service.NewFeedService(userService, userFollowService, postRepo, cfg.Feed)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(userService),
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		PostHandler:       handler.NewPostHandler(postService, feedService),
		FeedHandler:       handler.NewFeedHandler(feedService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, userRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(reconcileJob, cfg.Reconcile.Spec)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		ReconcileJob: reconcileJob,
		UserService:  userService,
	}, nil
}
