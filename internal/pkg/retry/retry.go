package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

type Config struct {
	Type               string                    `yaml:"type"` // fixed 或者 exponential
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	// 最大重试次数
	MaxRetries int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32         `yaml:"maxRetries"`
	Interval   time.Duration `yaml:"interval"`
}

// NewRetry 策略是有状态的，每次操作都要新建一个
func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("fixed 重试缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(cfg.FixedInterval.Interval, cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("exponential 重试缺少 exponentialBackoff 配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(
			cfg.ExponentialBackoff.InitialInterval,
			cfg.ExponentialBackoff.MaxInterval,
			cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}

// Do 执行 fn 直到成功、策略耗尽或者 ctx 结束，返回最后一次的错误
func Do(ctx context.Context, strategy retry.Strategy, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w, 最后一次错误: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
