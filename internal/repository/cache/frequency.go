package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
)

const FrequencyPrefix = "frequency"

// FrequencyCache 每个来源类型一个滑动窗口，统计最近到达的通知数量
type FrequencyCache interface {
	// Record 记录一次到达，返回清理后的窗口内数量
	Record(ctx context.Context, category domain.Category, at time.Time) (int, error)
	// Count 最近一次清理后的数量，不会主动清理
	Count(ctx context.Context, category domain.Category) (int, error)
}

func FrequencyKey(prefix string, category domain.Category) string {
	if prefix == "" {
		prefix = FrequencyPrefix
	}
	return fmt.Sprintf("%s:%s", prefix, category)
}
