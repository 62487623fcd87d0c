package repository

import (
	"context"
	"twijournal/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostDailyCounterRepo interface {
	GetCounter(ctx context.Context, userID int64, year, dayOfYear int) (int64, error)
}

type PostDailyCounterRepoImpl struct {
	db *gorm.DB
}

func NewPostDailyCounterRepo(db *gorm.DB) PostDailyCounterRepo {
	return &PostDailyCounterRepoImpl{db: db}
}

// GetCounter 当天还没有发帖记录时返回 0
func (s *PostDailyCounterRepoImpl) GetCounter(ctx context.Context, userID int64, year, dayOfYear int) (int64, error) {
	var counter model.PostDailyCounter
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND year_day = ?", userID, year, dayOfYear).
		First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "get post daily counter")
	}
	return counter.PostCounter, nil
}

// incrementDailyCounter 在发帖事务内 upsert 当天计数并返回自增后的值。
// upsert 会持有该行的写锁，同一用户同一天的并发发帖在此串行化。
func incrementDailyCounter(tx *gorm.DB, userID int64, year, dayOfYear int) (int64, error) {
	counter := &model.PostDailyCounter{
		UserID:      userID,
		Year:        year,
		DayOfYear:   dayOfYear,
		PostCounter: 1,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "year_day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"post_counter": gorm.Expr(model.PostDailyCounter{}.TableName()+".post_counter + ?", 1),
		}),
	}).Create(counter).Error
	if err != nil {
		return 0, errors.Wrap(err, "upsert post daily counter")
	}

	var current model.PostDailyCounter
	err = tx.Where("user_id = ? AND year = ? AND year_day = ?", userID, year, dayOfYear).
		First(&current).Error
	if err != nil {
		return 0, errors.Wrap(err, "read post daily counter")
	}
	return current.PostCounter, nil
}
