package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	successStatus = "success"
	errorStatus   = "error"
)

var _ redis.Hook = (*Hook)(nil)

// Hook 为 Redis 命令、管道和连接收集指标。
// 频次窗口的 Lua 脚本走的是 EVALSHA/EVAL，命令名会如实记录下来。
type Hook struct {
	commandCounter    *prometheus.CounterVec
	commandDuration   *prometheus.SummaryVec
	pipelineCounter   *prometheus.CounterVec
	pipelineDuration  prometheus.Summary
	connectionCounter *prometheus.CounterVec
}

// NewHook reg 为空时注册到默认的 Registerer
func NewHook(reg prometheus.Registerer) *Hook {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &Hook{
		commandCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_redis_commands_total",
				Help: "Redis 命令执行次数",
			},
			[]string{"command", "status"},
		),
		commandDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "scheduler_redis_command_duration_seconds",
				Help:       "Redis 命令耗时（秒）",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"command"},
		),
		pipelineCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_redis_pipelines_total",
				Help: "Redis 管道执行次数",
			},
			[]string{"status"},
		),
		pipelineDuration: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name:       "scheduler_redis_pipeline_duration_seconds",
				Help:       "Redis 管道耗时（秒）",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
		),
		connectionCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduler_redis_connections_total",
				Help: "Redis 建立连接次数",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(h.commandCounter, h.commandDuration, h.pipelineCounter, h.pipelineDuration, h.connectionCounter)
	return h
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		h.commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if len(cmds) == 0 {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.pipelineDuration.Observe(time.Since(start).Seconds())

		st := status(err)
		for _, cmd := range cmds {
			if status(cmd.Err()) == errorStatus {
				st = errorStatus
				break
			}
		}
		h.pipelineCounter.WithLabelValues(st).Inc()
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		h.connectionCounter.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

// redis.Nil 不算失败
func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return errorStatus
	}
	return successStatus
}
