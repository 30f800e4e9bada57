package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/retry"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache/local"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache/redis"
	"github.com/ecodeclub/ekit/bean/option"
	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	goredis "github.com/redis/go-redis/v9"
)

const (
	frequencyTypeLocal = "local"
	frequencyTypeRedis = "redis"
)

// InitGoCache 通知登记表使用，条目不过期，也就不需要清理协程
func InitGoCache() *ca.Cache {
	return ca.New(ca.NoExpiration, 0)
}

type FrequencyConfig struct {
	Type      string        `yaml:"type"`
	Window    time.Duration `yaml:"window"`
	KeyPrefix string        `yaml:"keyPrefix"`
	// 只对 redis 生效
	Retry *retry.Config `yaml:"retry"`
}

// InitFrequencyCache 默认使用进程内的窗口，配置成 redis 时才会连接 Redis
func InitFrequencyCache() cache.FrequencyCache {
	cfg := FrequencyConfig{
		Type:      frequencyTypeLocal,
		Window:    time.Minute,
		KeyPrefix: cache.FrequencyPrefix,
	}
	err := econf.UnmarshalKey("frequency", &cfg)
	if err != nil {
		panic(err)
	}
	return newFrequencyCache(cfg, func() goredis.Cmdable {
		return InitRedisClient()
	})
}

// newFrequencyCache redisClient 只在 type 为 redis 时调用
func newFrequencyCache(cfg FrequencyConfig, redisClient func() goredis.Cmdable) cache.FrequencyCache {
	switch cfg.Type {
	case frequencyTypeLocal:
		return local.NewFrequencyCache(cfg.Window)
	case frequencyTypeRedis:
		var opts []option.Option[redis.FrequencyCache]
		if cfg.Retry != nil {
			opts = append(opts, redis.WithCountRetry(*cfg.Retry))
		}
		return redis.NewFrequencyCache(redisClient(), cfg.Window, cfg.KeyPrefix, opts...)
	default:
		panic(fmt.Errorf("%w: frequency.type = %q", errs.ErrInvalidParameter, cfg.Type))
	}
}
