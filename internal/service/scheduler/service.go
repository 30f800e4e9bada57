package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// Service 提供给传输层的操作集合
//
//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=schedulermocks -typed=false Service
type Service interface {
	// Submit 创建并调度一条通知，只有参数错误或者ID生成失败才返回 error
	Submit(ctx context.Context, req domain.SubmitRequest) (domain.SubmitResult, error)
	// ListState 先做一次老化重算再返回快照，不会失败
	ListState(ctx context.Context) domain.State
	// SetMode 切换免打扰模式
	SetMode(ctx context.Context, active bool, modeName string) domain.State
	// DeleteByID 删除一条排队中或者缓冲中的通知，找不到返回 false
	DeleteByID(ctx context.Context, id string) (bool, domain.State)
	// UndoLast 恢复最近删除的通知
	UndoLast(ctx context.Context) (domain.UndoResult, domain.State)
	// Next 取出优先级最高的通知，队列为空时返回 false
	Next(ctx context.Context) (domain.Notification, bool)
	// Summary 单条通知的摘要
	Summary(ctx context.Context, id string) string
	// AddDominanceRule 追加一条压制规则
	AddDominanceRule(ctx context.Context, dominant, subordinate domain.Category) error
	// IsDominant a 是否压制 b
	IsDominant(ctx context.Context, a, b domain.Category) bool
	// ApplyAging 重新打分并重建队列
	ApplyAging(ctx context.Context) error
}

// IDGenerator *sonyflake.Sonyflake 满足这个接口
type IDGenerator interface {
	NextID() (uint64, error)
}

// service 用一把锁串行化所有操作：
// 一次调度会同时修改登记表、频次窗口和队列/缓冲区，不能交错执行。
type service struct {
	mu          sync.Mutex
	core        *Scheduler
	idGenerator IDGenerator
	logger      *elog.Component
}

func NewService(core *Scheduler, idGenerator IDGenerator) Service {
	return &service{
		core:        core,
		idGenerator: idGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, req domain.SubmitRequest) (domain.SubmitResult, error) {
	if !req.Category.IsValid() {
		return domain.SubmitResult{}, fmt.Errorf("%w: Category = %q", errs.ErrInvalidParameter, req.Category)
	}

	id, err := s.idGenerator.NextID()
	if err != nil {
		return domain.SubmitResult{}, fmt.Errorf("%w, 原因: %w", errs.ErrNotificationIDGenerateFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := domain.NewNotification(strconv.FormatUint(id, 10), req.Content, req.Sender, req.Category, s.core.Now())
	if err != nil {
		return domain.SubmitResult{}, err
	}
	return s.core.ScheduleNotification(ctx, n), nil
}

func (s *service) ListState(ctx context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx)
}

func (s *service) SetMode(ctx context.Context, active bool, modeName string) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.SetDNDMode(active, modeName)
	s.logger.Info("切换免打扰模式", elog.Any("active", active), elog.String("mode", s.core.Mode()))
	return s.state(ctx)
}

func (s *service) DeleteByID(ctx context.Context, id string) (bool, domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.core.DeleteNotification(ctx, id)
	return ok, s.state(ctx)
}

func (s *service) UndoLast(ctx context.Context) (domain.UndoResult, domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.core.RestoreLastDeleted(ctx)
	return res, s.state(ctx)
}

func (s *service) Next(_ context.Context) (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.core.GetNextNotification()
	if !ok {
		return domain.Notification{}, false
	}
	return *n, true
}

func (s *service) Summary(ctx context.Context, id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.NotificationSummary(ctx, id)
}

func (s *service) AddDominanceRule(_ context.Context, dominant, subordinate domain.Category) error {
	if !dominant.IsValid() || !subordinate.IsValid() {
		return fmt.Errorf("%w: 规则 %q -> %q", errs.ErrInvalidParameter, dominant, subordinate)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.AddDominanceRule(dominant, subordinate)
	return nil
}

func (s *service) IsDominant(_ context.Context, a, b domain.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.IsDominant(a, b)
}

func (s *service) ApplyAging(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.ApplyAdaptiveAging(ctx)
}

// state 调用方需要持有锁。
// 组装过程中出现意外只记录日志，返回兜底的错误状态，不向上抛。
func (s *service) state(ctx context.Context) (st domain.State) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("组装调度状态失败", elog.Any("panic", r))
			st = domain.ErrorState(fmt.Sprint(r))
		}
	}()

	if err := s.core.ApplyAdaptiveAging(ctx); err != nil {
		s.logger.Warn("老化重算时读取频次失败", elog.FieldErr(err))
	}

	queued := s.core.Queued()
	buffered := s.core.Buffered()

	st = domain.State{
		Mode:        s.core.Mode(),
		IsDND:       s.core.IsDND(),
		ActiveQueue: slice.Map(queued, s.toView(ctx)),
		DNDBuffer:   slice.Map(buffered, s.toView(ctx)),
	}
	if st.IsDND {
		st.GlobalSummary = s.core.SummaryBatch()
	} else {
		st.GlobalSummary = fmt.Sprintf("%d active notifications scheduled.", len(queued))
	}
	return st
}

func (s *service) toView(ctx context.Context) func(int, *domain.Notification) domain.View {
	return func(_ int, n *domain.Notification) domain.View {
		return domain.View{
			ID:        n.ID,
			Content:   n.Content,
			Sender:    n.Sender,
			Category:  n.Category,
			Priority:  n.Priority,
			Urgency:   n.Urgency,
			Timestamp: float64(n.Timestamp.UnixNano()) / 1e9,
			Status:    n.Status,
			Summary:   s.core.NotificationSummary(ctx, n.ID),
		}
	}
}
