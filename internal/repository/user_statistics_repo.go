package repository

import (
	"context"
	"sort"
	"twijournal/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatisticsRepo interface {
	GetByUserId(ctx context.Context, userID int64) (*model.UserStatistics, error)
	Recompute(ctx context.Context, userID int64) (*model.UserStatistics, bool, error)
	ListUserIds(ctx context.Context, afterID int64, limit int) ([]int64, error)
}

type UserStatisticsRepoImpl struct {
	db *gorm.DB
}

func NewUserStatisticsRepo(db *gorm.DB) UserStatisticsRepo {
	return &UserStatisticsRepoImpl{db: db}
}

func (s *UserStatisticsRepoImpl) GetByUserId(ctx context.Context, userID int64) (*model.UserStatistics, error) {
	var statistics model.UserStatistics
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&statistics).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get user statistics")
	}
	return &statistics, nil
}

// Recompute 按关注边和帖子表重新计算计数，返回校准后的统计以及是否发生过偏差
func (s *UserStatisticsRepoImpl) Recompute(ctx context.Context, userID int64) (*model.UserStatistics, bool, error) {
	var fixed model.UserStatistics
	var drifted bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.UserStatistics
		err := tx.Clauses(lockForUpdate(tx)...).Where("user_id = ?", userID).First(&current).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "lock user statistics")
		}

		fixed = model.UserStatistics{ID: current.ID, UserID: userID}
		if err = tx.Model(&model.FollowEdge{}).Where("follower_id = ?", userID).Count(&fixed.FolloweeCounter).Error; err != nil {
			return errors.Wrap(err, "count followees")
		}
		if err = tx.Model(&model.FollowEdge{}).Where("followee_id = ?", userID).Count(&fixed.FollowerCounter).Error; err != nil {
			return errors.Wrap(err, "count followers")
		}
		if err = tx.Model(&model.Post{}).Where("published_by = ?", userID).Count(&fixed.PostsCounter).Error; err != nil {
			return errors.Wrap(err, "count posts")
		}

		drifted = current.ID == 0 ||
			current.FolloweeCounter != fixed.FolloweeCounter ||
			current.FollowerCounter != fixed.FollowerCounter ||
			current.PostsCounter != fixed.PostsCounter
		if !drifted {
			return nil
		}

		if current.ID == 0 {
			return translateError(tx.Create(&fixed).Error, nil, "create user statistics")
		}
		return translateError(tx.Model(&model.UserStatistics{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"followee_counter": fixed.FolloweeCounter,
				"follower_counter": fixed.FollowerCounter,
				"posts_counter":    fixed.PostsCounter,
			}).Error, nil, "update user statistics")
	})
	if err != nil {
		return nil, false, err
	}
	return &fixed, drifted, nil
}

func (s *UserStatisticsRepoImpl) ListUserIds(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	ids := make([]int64, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id > ?", afterID).
		Order("id asc").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "list user ids")
	}
	return ids, nil
}

type counterDelta struct {
	userID int64
	column string
}

// applyFollowCounters 在关注事务内更新双方计数，按 user_id 升序加锁
func applyFollowCounters(tx *gorm.DB, followerID, followeeID int64, delta int) error {
	deltas := []counterDelta{
		{userID: followeeID, column: "follower_counter"},
		{userID: followerID, column: "followee_counter"},
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].userID < deltas[j].userID })

	for _, d := range deltas {
		if err := addCounter(tx, d.userID, d.column, delta); err != nil {
			return err
		}
	}
	return nil
}

// addPostsCounter 发帖事务内作者 posts_counter + 1
func addPostsCounter(tx *gorm.DB, userID int64) error {
	return addCounter(tx, userID, "posts_counter", 1)
}

// addCounter 计数递减时下限为 0；统计行缺失时补建，补建冲突说明行已存在，重新执行更新。
// mysql 对值未变化的更新返回 0 行，同样走到这里
func addCounter(tx *gorm.DB, userID int64, column string, delta int) error {
	updated, err := updateCounter(tx, userID, column, delta)
	if err != nil || updated {
		return err
	}

	initial := int64(0)
	if delta > 0 {
		initial = int64(delta)
	}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Model(&model.UserStatistics{}).
		Create(map[string]interface{}{"user_id": userID, column: initial})
	if result.Error != nil {
		return translateError(result.Error, nil, "create missing user statistics")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	_, err = updateCounter(tx, userID, column, delta)
	return err
}

func updateCounter(tx *gorm.DB, userID int64, column string, delta int) (bool, error) {
	var expr clause.Expr
	if delta >= 0 {
		expr = gorm.Expr(column+" + ?", delta)
	} else {
		expr = gorm.Expr("CASE WHEN "+column+" >= ? THEN "+column+" - ? ELSE 0 END", -delta, -delta)
	}

	result := tx.Model(&model.UserStatistics{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, expr)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "update %s of user %d", column, userID)
	}
	return result.RowsAffected > 0, nil
}

// lockForUpdate sqlite 不支持 FOR UPDATE，依赖其库级写锁
func lockForUpdate(tx *gorm.DB) []clause.Expression {
	if tx.Dialector.Name() == "sqlite" {
		return nil
	}
	return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
}
