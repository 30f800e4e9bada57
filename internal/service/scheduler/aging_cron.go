package scheduler

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

// AgingCron 定时重算优先级。
// 读状态时本来就会重算，这个任务只是限制 Next 看到的排序最多落后一个周期。
type AgingCron struct {
	svc     Service
	timeout time.Duration
	logger  *elog.Component
}

func NewAgingCron(svc Service) *AgingCron {
	return &AgingCron{
		svc:     svc,
		timeout: time.Second * 3,
		logger:  elog.DefaultLogger,
	}
}

func (t *AgingCron) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	err := t.svc.ApplyAging(ctx)
	if err != nil {
		// 频次读不到不影响下一轮
		t.logger.Warn("定时老化重算部分失败", elog.FieldErr(err))
	}
	return nil
}
