package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "notification-scheduler"

// InitZipkinTracer 同时设置为全局的 TracerProvider，退出前需要 Shutdown
func InitZipkinTracer() *sdktrace.TracerProvider {
	type Config struct {
		URL string `yaml:"url"`
	}
	cfg := Config{URL: "http://localhost:9411/api/v2/spans"}
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		panic(err)
	}
	exporter, err := zipkin.New(cfg.URL)
	if err != nil {
		panic(err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
