package cron

import (
	"fmt"
	log "log/slog"
	"twijournal/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	reconcileJob  *job.CounterReconcileJob
	reconcileSpec string
	registered    []string
}

// NewCronManager spec 为带秒的 cron 表达式
func NewCronManager(reconcileJob *job.CounterReconcileJob, reconcileSpec string) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		reconcileJob:  reconcileJob,
		reconcileSpec: reconcileSpec,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.reconcileSpec, s.reconcileJob); err != nil {
		return fmt.Errorf("register counter_reconcile %q: %w", s.reconcileSpec, err)
	}
	s.registered = append(s.registered, "counter_reconcile")
	return nil
}

// JobNames 已注册的任务名
func (s *Manager) JobNames() []string {
	return s.registered
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
