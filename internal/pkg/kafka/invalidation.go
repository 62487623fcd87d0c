package kafka

import (
	"context"
	"strconv"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/repository"

	"github.com/pkg/errors"
)

// invalidator 清理受影响用户的缓存，并把用户放入待校准集合
type invalidator struct {
	userRepo repository.UserRepo
}

func (s *invalidator) apply(ctx context.Context, userIDs []int64, followeeSetOwners []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs)+len(followeeSetOwners))
	for _, id := range followeeSetOwners {
		keys = append(keys, consts.UserFolloweesKey+strconv.FormatInt(id, 10))
	}

	users, err := s.userRepo.GetUserByIds(ctx, userIDs)
	if err != nil {
		return err
	}
	for _, user := range users {
		keys = append(keys, consts.UserProfileKey+user.Username)
	}
	if err = redis.DeleteKey(ctx, keys...); err != nil {
		return errors.Wrap(err, "delete cache keys")
	}

	dirty := make([]interface{}, 0, len(userIDs))
	for _, id := range userIDs {
		dirty = append(dirty, strconv.FormatInt(id, 10))
	}
	return errors.Wrap(redis.AddToSet(ctx, consts.UserStatisticsDirtyKey, dirty...), "mark statistics dirty")
}
