package ioc

import (
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
	"github.com/gotomicro/ego/task/ecron"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Web      *egin.Component
	Governor *egovernor.Component
	Crons    []ecron.Ecron
	Tracer   *sdktrace.TracerProvider
}
