package logger

import (
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
	"twijournal/internal/api/config"
)

var LogWriter io.Writer = os.Stdout

var (
	remoteIndex = "logstash-twijournal"
	remoteToken string
)

// InitLogger 日志同时输出到 stdout 和 Logstash，Logstash 不可达时只输出到 stdout
func InitLogger(cfg config.LogstashConfig) {
	if cfg.Index != "" {
		remoteIndex = cfg.Index
	}
	remoteToken = cfg.Token

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout

	var conn net.Conn
	var err error
	if cfg.Address != "" {
		conn, err = net.DialTimeout("tcp", cfg.Address, 3*time.Second)
	}
	if conn != nil && err == nil {
		hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
			WithAttrs([]log.Attr{
				log.String("target_index", remoteIndex),
				log.String("log_token", remoteToken),
			})

		filterRemote := &RemoteFilterHandler{next: hRemote}

		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, filterRemote},
		}

		LogWriter = conn
	} else {
		LogWriter = os.Stdout
		if err != nil {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
