package redis

import (
	"context"
	_ "embed"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/retry"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"github.com/ecodeclub/ekit/bean/option"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/frequency_record.lua
	recordScript string

	_ cache.FrequencyCache = (*FrequencyCache)(nil)
)

// FrequencyCache 基于 Redis zset 的滑动窗口，多个实例可以共享同一份频次
type FrequencyCache struct {
	cmd       redis.Cmdable
	span      time.Duration
	keyPrefix string
	script    *redis.Script
	// 只读操作的重试配置，为空时不重试
	countRetry *retry.Config
}

func NewFrequencyCache(cmd redis.Cmdable, span time.Duration, keyPrefix string, opts ...option.Option[FrequencyCache]) *FrequencyCache {
	f := &FrequencyCache{
		cmd:       cmd,
		span:      span,
		keyPrefix: keyPrefix,
		script:    redis.NewScript(recordScript),
	}
	option.Apply(f, opts...)
	return f
}

// WithCountRetry Record 不是幂等的，只有 Count 会重试
func WithCountRetry(cfg retry.Config) option.Option[FrequencyCache] {
	return func(f *FrequencyCache) {
		f.countRetry = &cfg
	}
}

func (f *FrequencyCache) Record(ctx context.Context, category domain.Category, at time.Time) (int, error) {
	key := f.key(category)
	// 窗口外的数据没有意义，保留两个窗口的长度即可
	ttl := 2 * f.span
	cnt, err := f.script.Run(ctx, f.cmd,
		[]string{key, key + ":seq"},
		at.UnixMilli(),
		f.span.Milliseconds(),
		ttl.Milliseconds(),
	).Int()
	if err != nil {
		return 0, errors.Wrapf(errs.ErrFrequencyCache, "记录 %s 失败: %v", key, err)
	}
	return cnt, nil
}

func (f *FrequencyCache) Count(ctx context.Context, category domain.Category) (int, error) {
	key := f.key(category)
	var cnt int64
	zcard := func() error {
		var err error
		cnt, err = f.cmd.ZCard(ctx, key).Result()
		return err
	}

	var err error
	if f.countRetry == nil {
		err = zcard()
	} else {
		strategy, err1 := retry.NewRetry(*f.countRetry)
		if err1 != nil {
			return 0, errors.Wrapf(errs.ErrFrequencyCache, "重试配置错误: %v", err1)
		}
		err = retry.Do(ctx, strategy, zcard)
	}
	if err != nil {
		return 0, errors.Wrapf(errs.ErrFrequencyCache, "读取 %s 失败: %v", key, err)
	}
	return int(cnt), nil
}

func (f *FrequencyCache) key(category domain.Category) string {
	return cache.FrequencyKey(f.keyPrefix, category)
}
