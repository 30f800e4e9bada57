package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	"github.com/gotomicro/ego/task/ecron"
)

func Crons(aging *scheduler.AgingCron) []ecron.Ecron {
	c := ecron.Load("cron.aging").Build(ecron.WithJob(aging.Do))
	return []ecron.Ecron{c}
}
