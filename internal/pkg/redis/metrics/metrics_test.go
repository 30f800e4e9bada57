package metrics

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHook_ProcessHook(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	h := NewHook(prometheus.NewRegistry())

	testCases := []struct {
		name string
		err  error
	}{
		{name: "成功"},
		{name: "key 不存在不算失败", err: redis.Nil},
		{name: "失败", err: errors.New("connection reset")},
	}
	for _, tc := range testCases {
		process := h.ProcessHook(func(context.Context, redis.Cmder) error {
			return tc.err
		})
		err := process(ctx, redis.NewIntCmd(ctx, "zcard", "frequency:social"))
		assert.Equal(t, tc.err, err, tc.name)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(h.commandCounter.WithLabelValues("zcard", successStatus)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.commandCounter.WithLabelValues("zcard", errorStatus)))
	assert.Equal(t, 1, testutil.CollectAndCount(h.commandDuration))
}

func TestHook_ProcessPipelineHook(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	h := NewHook(prometheus.NewRegistry())

	okCmd := redis.NewIntCmd(ctx, "incr", "seq")
	failedCmd := redis.NewIntCmd(ctx, "zadd", "frequency:news")
	failedCmd.SetErr(errors.New("WRONGTYPE"))

	process := h.ProcessPipelineHook(func(context.Context, []redis.Cmder) error {
		return nil
	})
	assert.NoError(t, process(ctx, []redis.Cmder{okCmd}))
	assert.NoError(t, process(ctx, []redis.Cmder{okCmd, failedCmd}))
	// 空管道不计数
	assert.NoError(t, process(ctx, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(h.pipelineCounter.WithLabelValues(successStatus)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.pipelineCounter.WithLabelValues(errorStatus)))
}

func TestHook_DialHook(t *testing.T) {
	t.Parallel()
	h := NewHook(prometheus.NewRegistry())
	dial := h.DialHook(func(context.Context, string, string) (net.Conn, error) {
		return nil, errors.New("refused")
	})
	_, err := dial(t.Context(), "tcp", "localhost:6379")
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.connectionCounter.WithLabelValues(errorStatus)))
}
