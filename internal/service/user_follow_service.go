package service

import (
	"context"
	log "log/slog"
	"strconv"
	"time"
	"twijournal/internal/api/config"
	"twijournal/internal/api/dto"
	"twijournal/internal/model"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/pkg/util"
	"twijournal/internal/repository"

	"github.com/pkg/errors"
)

const followeeSetTTL = time.Minute * 10

type UserFollowService interface {
	Follow(ctx context.Context, followerUsername, followeeUsername string) error
	Unfollow(ctx context.Context, followerUsername, followeeUsername string) error
	GetFollowers(ctx context.Context, username string, page int) (*dto.UserPageDTO, error)
	GetFollowees(ctx context.Context, username string, page int) (*dto.UserPageDTO, error)
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	FolloweeSet(ctx context.Context, userID int64) (map[int64]struct{}, error)
}

type UserFollowServiceImpl struct {
	userSvc        UserService
	userFollowRepo repository.UserFollowRepo
	feedCfg        config.FeedConfig
}

func NewUserFollowService(userSvc UserService, userFollowRepo repository.UserFollowRepo, feedCfg config.FeedConfig) UserFollowService {
	return &UserFollowServiceImpl{
		userSvc:        userSvc,
		userFollowRepo: userFollowRepo,
		feedCfg:        feedCfg,
	}
}

type fetchPageFunc func(ctx context.Context, userID int64, limit, offset int) ([]*model.User, int64, error)

// Follow follower 关注 followee，同名直接拒绝，不查询用户
func (s *UserFollowServiceImpl) Follow(ctx context.Context, followerUsername, followeeUsername string) error {
	if followerUsername == followeeUsername {
		return ErrSelfFollowNotAllowed
	}
	follower, followee, err := s.resolvePair(ctx, followerUsername, followeeUsername)
	if err != nil {
		return err
	}

	edge, err := model.NewFollowEdge(follower.ID, followee.ID)
	if err != nil {
		return ErrSelfFollowNotAllowed
	}

	err = s.userFollowRepo.Follow(ctx, edge)
	switch {
	case errors.Is(err, repository.ErrFollowEdgeExists):
		return ErrAlreadyFollowing
	case errors.Is(err, model.ErrSelfFollow):
		return ErrSelfFollowNotAllowed
	case err != nil:
		return err
	}

	s.afterEdgeChanged(ctx, follower, followee)
	log.InfoContext(ctx, "user followed", "follower_id", follower.ID, "followee_id", followee.ID)
	return nil
}

// Unfollow follower 取消关注 followee
func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, followerUsername, followeeUsername string) error {
	follower, followee, err := s.resolvePair(ctx, followerUsername, followeeUsername)
	if err != nil {
		return err
	}

	err = s.userFollowRepo.Unfollow(ctx, follower.ID, followee.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFollowEdgeMissing) {
			return ErrNotFollowing
		}
		return err
	}

	s.afterEdgeChanged(ctx, follower, followee)
	log.InfoContext(ctx, "user unfollowed", "follower_id", follower.ID, "followee_id", followee.ID)
	return nil
}

// GetFollowers 获取用户的粉丝列表
func (s *UserFollowServiceImpl) GetFollowers(ctx context.Context, username string, page int) (*dto.UserPageDTO, error) {
	return s.getPageCommon(ctx, username, page, s.userFollowRepo.GetFollowers)
}

// GetFollowees 获取用户的关注列表
func (s *UserFollowServiceImpl) GetFollowees(ctx context.Context, username string, page int) (*dto.UserPageDTO, error) {
	return s.getPageCommon(ctx, username, page, s.userFollowRepo.GetFollowees)
}

func (s *UserFollowServiceImpl) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	followees, err := s.FolloweeSet(ctx, followerID)
	if err != nil {
		return false, err
	}
	_, ok := followees[followeeID]
	return ok, nil
}

// FolloweeSet 用户关注的 id 集合，先读缓存，未命中回源数据库后重建缓存
func (s *UserFollowServiceImpl) FolloweeSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	key := consts.UserFolloweesKey + strconv.FormatInt(userID, 10)

	members, err := redis.GetSet(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read followee cache failed", "key", key, "err", err)
	}
	if len(members) > 0 {
		set := make(map[int64]struct{}, len(members))
		for _, member := range members {
			if member == consts.EmptySetSentinel {
				continue
			}
			id, parseErr := strconv.ParseInt(member, 10, 64)
			if parseErr != nil {
				return nil, errors.Wrapf(parseErr, "bad followee member %q", member)
			}
			set[id] = struct{}{}
		}
		return set, nil
	}

	ids, err := s.userFollowRepo.ListFolloweeIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(ids))
	cached := make([]interface{}, 0, len(ids)+1)
	for _, id := range ids {
		set[id] = struct{}{}
		cached = append(cached, id)
	}
	if len(cached) == 0 {
		cached = append(cached, consts.EmptySetSentinel)
	}
	if err = redis.SetMembersWithExpiration(ctx, key, cached, followeeSetTTL); err != nil {
		log.WarnContext(ctx, "write followee cache failed", "key", key, "err", err)
	}
	return set, nil
}

func (s *UserFollowServiceImpl) resolvePair(ctx context.Context, followerUsername, followeeUsername string) (*model.User, *model.User, error) {
	follower, err := s.userSvc.ResolveUser(ctx, followerUsername)
	if err != nil {
		return nil, nil, err
	}
	followee, err := s.userSvc.ResolveUser(ctx, followeeUsername)
	if err != nil {
		return nil, nil, err
	}
	return follower, followee, nil
}

// afterEdgeChanged 事务提交后清理缓存，失败只记录日志
func (s *UserFollowServiceImpl) afterEdgeChanged(ctx context.Context, follower, followee *model.User) {
	key := consts.UserFolloweesKey + strconv.FormatInt(follower.ID, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		log.WarnContext(ctx, "invalidate followee cache failed", "key", key, "err", err)
	}
	invalidateProfiles(ctx, follower.Username, followee.Username)
}

func (s *UserFollowServiceImpl) getPageCommon(ctx context.Context, username string, page int, fetchDB fetchPageFunc) (*dto.UserPageDTO, error) {
	user, err := s.userSvc.ResolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	size := s.feedCfg.FollowPageSize
	if !util.PageInRange(page, size) {
		return nil, nil
	}
	users, total, err := fetchDB(ctx, user.ID, size, util.PageOffset(page, size))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &dto.UserPageDTO{
		Users:      toUserDTOs(users),
		PageNumber: page,
		TotalPages: util.TotalPages(total, size),
		TotalUsers: total,
	}, nil
}
