package config

// Config 配置主体
type Config struct {
	Server                 ServerConfig       `mapstructure:"server"`
	DB                     DBConfig           `mapstructure:"database"`
	Redis                  RedisConfig        `mapstructure:"redis"`
	Logstash               LogstashConfig     `mapstructure:"logstash"`
	JWT                    JWTConfig          `mapstructure:"jwt"`
	Feed                   FeedConfig         `mapstructure:"feed"`
	Reconcile              ReconcileConfig    `mapstructure:"reconcile"`
	Kafka                  KafkaConfig        `mapstructure:"kafka"`
	KafkaFollowersConsumer KafkaTopicConsumer `mapstructure:"kafka_followers_consumer"`
	KafkaPostsConsumer     KafkaTopicConsumer `mapstructure:"kafka_posts_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置，Driver 可选 mysql / postgres / sqlite
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	Issuer          string `mapstructure:"issuer"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// FeedConfig 分页、配额与 HATEOAS 链接
type FeedConfig struct {
	MaxPostsPerPage     int    `mapstructure:"max_posts_per_page"`
	MaxFeedPostsPerPage int    `mapstructure:"max_feed_posts_per_page"`
	UserMaxPostsPerDay  int64  `mapstructure:"user_max_posts_per_day"`
	FollowPageSize      int    `mapstructure:"follow_page_size"`
	PostURI             string `mapstructure:"post_uri"`
	PostDetailURI       string `mapstructure:"post_detail_uri"`
	FeedURI             string `mapstructure:"feed_uri"`
}

// ReconcileConfig 计数校准任务
type ReconcileConfig struct {
	Spec      string `mapstructure:"spec"`
	BatchSize int    `mapstructure:"batch_size"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaTopicConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
