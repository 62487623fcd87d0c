package commands

import (
	"context"
	"twijournal/internal/api/config"
	"twijournal/internal/job"
	"twijournal/internal/wire"

	"github.com/spf13/cobra"
)

var fullSweep bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "校准用户计数",
	Long: `按边表和帖子表重算 users_statistics。

默认只处理 CDC 标记的待校准用户，--all 扫描全部用户。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err = openRedis(); err != nil {
			return err
		}
		_, reconcileJob := wire.BuildServices(db, config.Cfg)

		var report job.ReconcileReport
		ctx := context.Background()
		if fullSweep {
			report, err = reconcileJob.FullSweep(ctx)
		} else {
			report, err = reconcileJob.ReconcileDirty(ctx)
		}
		if err != nil {
			return err
		}
		cmd.Printf("checked=%d fixed=%d failed=%d\n", report.Checked, report.Fixed, report.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().BoolVar(&fullSweep, "all", false, "扫描全部用户")
}
