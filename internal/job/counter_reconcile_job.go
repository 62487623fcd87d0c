package job

import (
	"context"
	log "log/slog"
	"strconv"
	"time"
	"twijournal/internal/pkg/consts"
	"twijournal/internal/pkg/logger"
	"twijournal/internal/pkg/redis"
	"twijournal/internal/service"

	"github.com/google/uuid"
)

const (
	reconcileLockTTL = time.Minute * 5
	processingSuffix = ":processing"
)

// ReconcileReport 一次校准的结果
type ReconcileReport struct {
	Checked int
	Fixed   int
	Failed  int
}

// CounterReconcileJob 校准用户计数。定时任务只处理 CDC 标记过的用户，FullSweep 扫描全部用户
type CounterReconcileJob struct {
	statisticsSvc service.StatisticsService
	batchSize     int
}

func NewCounterReconcileJob(statisticsSvc service.StatisticsService, batchSize int) *CounterReconcileJob {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &CounterReconcileJob{
		statisticsSvc: statisticsSvc,
		batchSize:     batchSize,
	}
}

func (s *CounterReconcileJob) Run() {
	ctx := logger.NewJobContext("job")
	report, err := s.ReconcileDirty(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reconcile dirty statistics error", "err", err)
		return
	}
	if report.Checked > 0 {
		log.InfoContext(ctx, "reconcile dirty statistics done",
			"checked", report.Checked, "fixed", report.Fixed, "failed", report.Failed)
	}
}

// ReconcileDirty 处理待校准集合；有失败时保留 processing 集合，下次运行优先重试
func (s *CounterReconcileJob) ReconcileDirty(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport

	lockValue := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.CounterReconcileLock, lockValue, reconcileLockTTL, 1)
	if err != nil || !ok {
		return report, err
	}
	defer redis.UnLock(ctx, consts.CounterReconcileLock, lockValue)

	processingKey := consts.UserStatisticsDirtyKey + processingSuffix
	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		return report, err
	}
	if len(members) == 0 {
		exists, err := redis.GetRdbClient().Exists(ctx, consts.UserStatisticsDirtyKey).Result()
		if err != nil || exists == 0 {
			return report, err
		}
		if err = redis.Rename(ctx, consts.UserStatisticsDirtyKey, processingKey); err != nil {
			return report, err
		}
		if members, err = redis.GetSet(ctx, processingKey); err != nil {
			return report, err
		}
	}

	for _, member := range members {
		userID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "skip bad dirty member", "member", member)
			continue
		}
		s.reconcileOne(ctx, userID, &report)
	}

	if report.Failed == 0 {
		if err = redis.DeleteKey(ctx, processingKey); err != nil {
			log.ErrorContext(ctx, "delete processing set error", "err", err)
		}
	}
	return report, nil
}

// FullSweep 按 id 升序分批校准全部用户
func (s *CounterReconcileJob) FullSweep(ctx context.Context) (ReconcileReport, error) {
	var report ReconcileReport
	var afterID int64
	for {
		ids, err := s.statisticsSvc.ListUserIds(ctx, afterID, s.batchSize)
		if err != nil {
			return report, err
		}
		for _, id := range ids {
			s.reconcileOne(ctx, id, &report)
		}
		if len(ids) < s.batchSize {
			return report, nil
		}
		afterID = ids[len(ids)-1]
	}
}

func (s *CounterReconcileJob) reconcileOne(ctx context.Context, userID int64, report *ReconcileReport) {
	report.Checked++
	fixed, err := s.statisticsSvc.Reconcile(ctx, userID)
	if err != nil {
		report.Failed++
		log.ErrorContext(ctx, "reconcile user statistics error", "user_id", userID, "err", err)
		return
	}
	if fixed {
		report.Fixed++
	}
}
