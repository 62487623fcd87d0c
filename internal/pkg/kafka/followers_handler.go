package kafka

import (
	"context"
	log "log/slog"
	"twijournal/internal/repository"

	"github.com/IBM/sarama"
)

const followersTable = "followers"

// FollowersHandler 消费 followers 表的 binlog
type FollowersHandler struct {
	invalidator
}

func NewFollowersHandler(userRepo repository.UserRepo) *FollowersHandler {
	return &FollowersHandler{invalidator{userRepo: userRepo}}
}

func (s *FollowersHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("followers consumer setup")
	return nil
}

func (s *FollowersHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("followers consumer cleanup")
	return nil
}

func (s *FollowersHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-followers process batch error", "err", err)
		return err
	}
	return nil
}

func (s *FollowersHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, followersTable)
	if err != nil || canalMsg == nil {
		return nil
	}

	var affected, owners []int64
	for _, row := range canalMsg.Data {
		followerID := StrToInt64(row["follower_id"])
		followeeID := StrToInt64(row["followee_id"])
		if followerID == 0 || followeeID == 0 {
			log.WarnContext(ctx, "skip followers row without ids", "row", row)
			continue
		}
		affected = append(affected, followerID, followeeID)
		owners = append(owners, followerID)
	}
	return s.apply(ctx, affected, owners)
}
