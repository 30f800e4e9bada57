package local

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/pkg/slidewindow"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"github.com/ecodeclub/ekit/syncx"
)

var _ cache.FrequencyCache = (*FrequencyCache)(nil)

// FrequencyCache 进程内的实现，每个来源类型懒创建一个窗口
type FrequencyCache struct {
	span    time.Duration
	windows syncx.Map[domain.Category, *lockedWindow]
}

func NewFrequencyCache(span time.Duration) *FrequencyCache {
	return &FrequencyCache{span: span}
}

func (f *FrequencyCache) Record(_ context.Context, category domain.Category, at time.Time) (int, error) {
	w := f.window(category)
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Add(at), nil
}

func (f *FrequencyCache) Count(_ context.Context, category domain.Category) (int, error) {
	w, ok := f.windows.Load(category)
	if !ok {
		return 0, nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Count(), nil
}

func (f *FrequencyCache) window(category domain.Category) *lockedWindow {
	w, _ := f.windows.LoadOrStore(category, &lockedWindow{Window: slidewindow.New(f.span)})
	return w
}
