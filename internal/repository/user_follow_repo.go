package repository

import (
	"context"
	"twijournal/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserFollowRepo interface {
	Follow(ctx context.Context, edge *model.FollowEdge) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	ListFolloweeIds(ctx context.Context, followerID int64) ([]int64, error)
	ListFollowerIds(ctx context.Context, followeeID int64) ([]int64, error)
	GetFollowers(ctx context.Context, followeeID int64, limit, offset int) ([]*model.User, int64, error)
	GetFollowees(ctx context.Context, followerID int64, limit, offset int) ([]*model.User, int64, error)
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// Follow 写入关注边后再更新双方计数，重复关注返回 ErrFollowEdgeExists
func (s *UserFollowRepoImpl) Follow(ctx context.Context, edge *model.FollowEdge) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(edge).Error; err != nil {
			if errors.Is(err, model.ErrSelfFollow) {
				return err
			}
			return translateError(err, ErrFollowEdgeExists, "create follow edge")
		}
		return applyFollowCounters(tx, edge.FollowerID, edge.FolloweeID, 1)
	})
}

// Unfollow 删除关注边后再递减双方计数，关系不存在返回 ErrFollowEdgeMissing
func (s *UserFollowRepoImpl) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&model.FollowEdge{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "delete follow edge")
		}
		if result.RowsAffected == 0 {
			return ErrFollowEdgeMissing
		}
		return applyFollowCounters(tx, followerID, followeeID, -1)
	})
}

func (s *UserFollowRepoImpl) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.FollowEdge{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "check follow edge")
	}
	return count > 0, nil
}

// ListFolloweeIds 获取用户的关注 id 列表，按关注时间倒序
func (s *UserFollowRepoImpl) ListFolloweeIds(ctx context.Context, followerID int64) ([]int64, error) {
	ids := make([]int64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.FollowEdge{}).
		Where("follower_id = ?", followerID).
		Order("created_at desc").
		Order("followee_id asc").
		Pluck("followee_id", &ids)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "list followee ids")
	}
	return ids, nil
}

// ListFollowerIds 获取用户的粉丝 id 列表，按关注时间倒序
func (s *UserFollowRepoImpl) ListFollowerIds(ctx context.Context, followeeID int64) ([]int64, error) {
	ids := make([]int64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.FollowEdge{}).
		Where("followee_id = ?", followeeID).
		Order("created_at desc").
		Order("follower_id asc").
		Pluck("follower_id", &ids)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "list follower ids")
	}
	return ids, nil
}

// GetFollowers 获取用户的粉丝列表
func (s *UserFollowRepoImpl) GetFollowers(ctx context.Context, followeeID int64, limit, offset int) ([]*model.User, int64, error) {
	return s.pageUsers(ctx, "followers.follower_id = users.id", "followers.followee_id = ?", followeeID, limit, offset)
}

// GetFollowees 获取用户的关注列表
func (s *UserFollowRepoImpl) GetFollowees(ctx context.Context, followerID int64, limit, offset int) ([]*model.User, int64, error) {
	return s.pageUsers(ctx, "followers.followee_id = users.id", "followers.follower_id = ?", followerID, limit, offset)
}

func (s *UserFollowRepoImpl) pageUsers(ctx context.Context, on, where string, userID int64, limit, offset int) ([]*model.User, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.FollowEdge{}).
		Where(where, userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "count follow edges")
	}

	users := make([]*model.User, 0, limit)
	err = s.db.WithContext(ctx).
		Joins("JOIN followers ON "+on).
		Where(where, userID).
		Order("followers.created_at desc").
		Order("users.id asc").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "page follow users")
	}
	return users, total, nil
}
