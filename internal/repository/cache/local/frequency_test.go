package local

import (
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyCache(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFrequencyCache(time.Minute)

	cnt, err := f.Count(ctx, domain.CategorySocial)
	require.NoError(t, err)
	assert.Equal(t, 0, cnt)

	for i := 0; i < 3; i++ {
		cnt, err = f.Record(ctx, domain.CategorySocial, base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
		assert.Equal(t, i+1, cnt)
	}

	// 不同类型互不影响
	cnt, err = f.Record(ctx, domain.CategoryNews, base)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	// 两分钟后再来一条，前面三条全部过期
	cnt, err = f.Record(ctx, domain.CategorySocial, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)

	cnt, err = f.Count(ctx, domain.CategoryNews)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func TestFrequencyCache_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	f := NewFrequencyCache(time.Hour)
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Record(ctx, domain.CategoryWork, now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cnt, err := f.Count(ctx, domain.CategoryWork)
	require.NoError(t, err)
	assert.Equal(t, 50, cnt)
}
