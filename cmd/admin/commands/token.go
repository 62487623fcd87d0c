package commands

import (
	"context"
	"twijournal/internal/api/config"
	"twijournal/internal/wire"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token <username>",
	Short: "为已存在的用户签发 token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		userService, _ := wire.BuildServices(db, config.Cfg)

		token, err := userService.IssueToken(context.Background(), args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(token, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
