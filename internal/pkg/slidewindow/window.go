package slidewindow

import (
	"time"

	"github.com/ecodeclub/ekit/list"
)

const DefaultSpan = 60 * time.Second

// Window 按到达时间记录的滑动窗口，只在 Add 时清理过期数据，
// 所以 Count 反映的是最近一次 Add 之后的状态。非并发安全。
type Window struct {
	span       time.Duration
	timestamps *list.LinkedList[time.Time]
}

func New(span time.Duration) *Window {
	if span <= 0 {
		span = DefaultSpan
	}
	return &Window{
		span:       span,
		timestamps: list.NewLinkedList[time.Time](),
	}
}

// Add 追加时间戳，并淘汰所有早于 ts - span 的记录。
// 阈值相对于本次写入的时间，而不是全局的当前时间，乱序写入也不会误删。
func (w *Window) Add(ts time.Time) int {
	_ = w.timestamps.Append(ts)
	w.cleanup(ts)
	return w.Count()
}

func (w *Window) Count() int {
	return w.timestamps.Len()
}

func (w *Window) Span() time.Duration {
	return w.span
}

func (w *Window) cleanup(now time.Time) {
	threshold := now.Add(-w.span)
	for w.timestamps.Len() > 0 {
		oldest, err := w.timestamps.Get(0)
		if err != nil || !oldest.Before(threshold) {
			return
		}
		_, _ = w.timestamps.Delete(0)
	}
}
