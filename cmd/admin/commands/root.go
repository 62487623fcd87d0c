package commands

import (
	"fmt"
	"os"
	"twijournal/internal/api/config"
	"twijournal/internal/pkg/database"
	"twijournal/internal/pkg/logger"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/pkg/security"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// 覆盖配置文件中的数据库
	dbDriver string
	dbDSN    string
)

var rootCmd = &cobra.Command{
	Use:   "twijournal-admin",
	Short: "twijournal 运维工具",
	Long: `twijournal 运维工具：建表、计数校准、签发调试 token。

配置读取 ./configs/config.yaml，环境变量 TWIJOURNAL_* 可覆盖。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(); err != nil {
			return err
		}
		if dbDriver != "" {
			config.Cfg.DB.Driver = dbDriver
		}
		if dbDSN != "" {
			config.Cfg.DB.DSN = dbDSN
		}
		logger.InitLogger(config.Cfg.Logstash)
		security.InitJWT(config.Cfg.JWT)
		return nil
	},
}

// Execute 运行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "数据库驱动 mysql / postgres / sqlite")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "dsn", "", "数据库连接串")
}

func openDB() (*gorm.DB, error) {
	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func openRedis() error {
	if err := redis.InitRedis(config.Cfg.Redis); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}
