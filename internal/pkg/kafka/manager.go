package kafka

import (
	"context"
	log "log/slog"
	"twijournal/internal/api/config"
	"twijournal/internal/repository"

	"github.com/IBM/sarama"
)

type consumer struct {
	name    string
	topic   string
	group   sarama.ConsumerGroup
	handler sarama.ConsumerGroupHandler
}

// ConsumerManager 管理所有 Kafka 消费者，kafka.enable 为 false 时不创建任何消费者
type ConsumerManager struct {
	consumers []*consumer
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, userRepo repository.UserRepo) (*ConsumerManager, error) {
	m := &ConsumerManager{}
	if !cfg.Kafka.Enable {
		return m, nil
	}

	saramaCfg := newSaramaConfig(cfg.Kafka)

	followersGroup, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollowersConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	m.consumers = append(m.consumers, &consumer{
		name:    "followers",
		topic:   cfg.KafkaFollowersConsumer.Topic,
		group:   followersGroup,
		handler: NewFollowersHandler(userRepo),
	})

	postsGroup, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaPostsConsumer.GroupID, saramaCfg)
	if err != nil {
		_ = followersGroup.Close()
		return nil, err
	}
	m.consumers = append(m.consumers, &consumer{
		name:    "posts",
		topic:   cfg.KafkaPostsConsumer.Topic,
		group:   postsGroup,
		handler: NewPostsHandler(userRepo),
	})

	return m, nil
}

// Start 启动所有消费者，阻塞到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	for _, c := range m.consumers {
		go m.run(ctx, c)
	}

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	for _, c := range m.consumers {
		if err := c.group.Close(); err != nil {
			log.Error("Failed to close consumer", "consumer", c.name, "err", err)
		}
	}
	return nil
}

func (m *ConsumerManager) run(ctx context.Context, c *consumer) {
	log.Info("consumer started", "consumer", c.name, "topic", c.topic)
	go func() {
		for err := range c.group.Errors() {
			log.Error("consumer group error", "consumer", c.name, "err", err)
		}
	}()
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c.handler); err != nil {
			log.Error("Error from consumer", "consumer", c.name, "err", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
