//go:build wireinject

package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/ioc"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/service/priority"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	schedulerweb "gitee.com/flycash/notification-scheduler/internal/web/scheduler"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitIDGenerator,
		ioc.InitGoCache,
		ioc.InitFrequencyCache,
		ioc.InitZipkinTracer,
	)
	schedulerSvcSet = wire.NewSet(
		repository.NewNotificationRepository,
		priority.NewDominanceGraph,
		ioc.InitScheduler,
		ioc.InitSchedulerService,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 调度服务
		schedulerSvcSet,

		// 定时任务
		scheduler.NewAgingCron,
		ioc.Crons,

		// HTTP 服务器
		schedulerweb.NewHandler,
		ioc.InitGinServer,
		ioc.InitGovernor,
		wire.Struct(new(ioc.App), "*"),
	)

	return new(ioc.App)
}
