package kafka

import (
	"context"
	log "log/slog"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/repository"

	"github.com/IBM/sarama"
)

const postsTable = "posts"

// PostsHandler 消费 posts 表的 binlog，只关心新增
type PostsHandler struct {
	invalidator
}

func NewPostsHandler(userRepo repository.UserRepo) *PostsHandler {
	return &PostsHandler{invalidator{userRepo: userRepo}}
}

func (s *PostsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("posts consumer setup")
	return nil
}

func (s *PostsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("posts consumer cleanup")
	return nil
}

func (s *PostsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-posts process batch error", "err", err)
		return err
	}
	return nil
}

func (s *PostsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, postsTable)
	if err != nil || canalMsg == nil {
		return nil
	}
	if canalMsg.Type == consts.UPDATE {
		return nil
	}

	var authors []int64
	for _, row := range canalMsg.Data {
		if authorID := StrToInt64(row["published_by"]); authorID != 0 {
			authors = append(authors, authorID)
		}
	}
	return s.apply(ctx, authors, nil)
}
