package redis

import (
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/pkg/retry"
	"github.com/ecodeclub/ekit/bean/option"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// 连不上的地址，不依赖真实的 Redis
func newUnreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestFrequencyCache_CountRetry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		opts []option.Option[FrequencyCache]
	}{
		{name: "不重试"},
		{name: "重试后仍然失败", opts: []option.Option[FrequencyCache]{WithCountRetry(retry.Config{
			Type:          "fixed",
			FixedInterval: &retry.FixedIntervalConfig{Interval: time.Millisecond, MaxRetries: 2},
		})}},
		{name: "重试配置错误", opts: []option.Option[FrequencyCache]{WithCountRetry(retry.Config{Type: "linear"})}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newUnreachableClient()
			defer client.Close()

			f := NewFrequencyCache(client, time.Minute, "frequency", tc.opts...)
			_, err := f.Count(t.Context(), domain.CategorySocial)
			assert.ErrorIs(t, err, errs.ErrFrequencyCache)
		})
	}
}

func TestFrequencyCache_RecordUnreachable(t *testing.T) {
	t.Parallel()
	client := newUnreachableClient()
	defer client.Close()

	f := NewFrequencyCache(client, time.Minute, "frequency")
	_, err := f.Record(t.Context(), domain.CategoryNews, time.Now())
	assert.ErrorIs(t, err, errs.ErrFrequencyCache)
}
