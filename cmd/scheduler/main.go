package main

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/cmd/scheduler/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

// go run ./cmd/scheduler --config=config/local.yaml
func main() {
	// ego.New 负责加载配置，必须先于依赖构建
	egoApp := ego.New()
	app := ioc.InitApp()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Tracer.Shutdown(ctx); err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}()

	if err := egoApp.Serve(app.Web, app.Governor).
		Cron(app.Crons...).
		Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
