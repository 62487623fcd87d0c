package cron

import log "log/slog"

// InitCron 注册全部定时任务后启动引擎，表达式非法时不启动
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("Cron Jobs started", "jobs", mgr.JobNames())
	return nil
}
