package service

import (
	"context"
	log "log/slog"
	"twijournal/internal/repository"
)

// StatisticsService 按边表和帖子表重算用户计数
type StatisticsService interface {
	Reconcile(ctx context.Context, userID int64) (bool, error)
	ListUserIds(ctx context.Context, afterID int64, limit int) ([]int64, error)
}

type StatisticsServiceImpl struct {
	userRepo       repository.UserRepo
	statisticsRepo repository.UserStatisticsRepo
}

func NewStatisticsService(userRepo repository.UserRepo, statisticsRepo repository.UserStatisticsRepo) StatisticsService {
	return &StatisticsServiceImpl{
		userRepo:       userRepo,
		statisticsRepo: statisticsRepo,
	}
}

// Reconcile 返回计数是否发生过偏差，偏差修正后清理主页缓存；用户不存在时跳过
func (s *StatisticsServiceImpl) Reconcile(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	statistics, drifted, err := s.statisticsRepo.Recompute(ctx, userID)
	if err != nil {
		return false, err
	}
	if !drifted {
		return false, nil
	}

	log.WarnContext(ctx, "user statistics drift fixed",
		"user_id", userID,
		"followee_counter", statistics.FolloweeCounter,
		"follower_counter", statistics.FollowerCounter,
		"posts_counter", statistics.PostsCounter,
	)
	invalidateProfiles(ctx, user.Username)
	return true, nil
}

func (s *StatisticsServiceImpl) ListUserIds(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	return s.statisticsRepo.ListUserIds(ctx, afterID, limit)
}
