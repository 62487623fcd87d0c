package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 TWIJOURNAL_* 可覆盖文件中的值
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("TWIJOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// Default 返回只包含默认值的配置，供测试和命令行工具使用
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 20)

	v.SetDefault("logstash.index", "logstash-twijournal")

	v.SetDefault("jwt.secret", "twijournal")
	v.SetDefault("jwt.issuer", "twijournal")
	v.SetDefault("jwt.expiration_hours", 24)

	v.SetDefault("feed.max_posts_per_page", 5)
	v.SetDefault("feed.max_feed_posts_per_page", 10)
	v.SetDefault("feed.user_max_posts_per_day", 5)
	v.SetDefault("feed.follow_page_size", 20)
	v.SetDefault("feed.post_uri", "http://localhost:8000/api/posts/")
	v.SetDefault("feed.post_detail_uri", "http://localhost:8000/api/posts/detail/")
	v.SetDefault("feed.feed_uri", "http://localhost:8000/api/feeds")

	v.SetDefault("reconcile.spec", "0 */5 * * * *")
	v.SetDefault("reconcile.batch_size", 500)

	v.SetDefault("kafka.consumer.session_timeout", 10)
	v.SetDefault("kafka.consumer.heartbeat_interval", 3)
	v.SetDefault("kafka.consumer.rebalance_timeout", 60)
	v.SetDefault("kafka.consumer.max_processing_time", 5)
	v.SetDefault("kafka_followers_consumer.topic", "twijournal.followers")
	v.SetDefault("kafka_followers_consumer.group_id", "twijournal-followers")
	v.SetDefault("kafka_posts_consumer.topic", "twijournal.posts")
	v.SetDefault("kafka_posts_consumer.group_id", "twijournal-posts")
}
