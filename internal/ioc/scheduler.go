package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/service/priority"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler/metrics"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler/tracing"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/sonyflake"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func InitScheduler(repo repository.NotificationRepository,
	frequency cache.FrequencyCache,
	dominance *priority.DominanceGraph,
) *scheduler.Scheduler {
	type Config struct {
		UndoCapacity  int    `yaml:"undoCapacity"`
		SummaryLength int    `yaml:"summaryLength"`
		DefaultMode   string `yaml:"defaultMode"`
	}
	var cfg Config
	err := econf.UnmarshalKey("scheduler", &cfg)
	if err != nil {
		panic(err)
	}
	s := scheduler.NewScheduler(repo, frequency, dominance,
		scheduler.WithUndoCapacity(cfg.UndoCapacity),
		scheduler.WithSummaryLength(cfg.SummaryLength),
		scheduler.WithLogger(elog.DefaultLogger.With(elog.String("component", "scheduler"))),
	)
	// 启动时就处于免打扰
	if cfg.DefaultMode != "" {
		s.SetDNDMode(true, cfg.DefaultMode)
	}
	return s
}

// InitSchedulerService 链路追踪在最外层，指标在内层
func InitSchedulerService(core *scheduler.Scheduler,
	idGenerator *sonyflake.Sonyflake,
	tp *sdktrace.TracerProvider,
) scheduler.Service {
	svc := scheduler.NewService(core, idGenerator)
	return tracing.NewService(metrics.NewService(svc, prometheus.DefaultRegisterer), tp)
}
