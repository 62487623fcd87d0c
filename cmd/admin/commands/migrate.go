package commands

import (
	"twijournal/internal/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "按模型建表",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err = database.AutoMigrate(db); err != nil {
			return err
		}
		cmd.Println("migrate done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
