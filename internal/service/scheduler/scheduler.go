package scheduler

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/pkg/heapx"
	"gitee.com/flycash/notification-scheduler/internal/pkg/stackx"
	"gitee.com/flycash/notification-scheduler/internal/repository"
	"gitee.com/flycash/notification-scheduler/internal/repository/cache"
	"gitee.com/flycash/notification-scheduler/internal/service/priority"
	"github.com/ecodeclub/ekit/bean/option"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultModeName      = "DND"
	DefaultSummaryLength = 20

	ReasonDNDActive    = "DND Active"
	NothingToRestore   = "nothing to restore"
	NotFoundSummary    = "Not found"
	EmptyBufferSummary = "Empty"
)

// Scheduler 调度核心：投递队列、免打扰缓冲区、撤销栈和频次窗口。
// 一条通知在任意时刻只会出现在队列、缓冲区、撤销栈之一，或者已经被投递。
// 非并发安全，并发访问由 Service 统一加锁。
type Scheduler struct {
	repo      repository.NotificationRepository
	frequency cache.FrequencyCache
	dominance *priority.DominanceGraph

	queue  *heapx.PriorityQueue[*domain.Notification]
	buffer []*domain.Notification
	undo   *stackx.Bounded[*domain.Notification]

	dndActive bool
	modeName  string

	undoCapacity  int
	summaryLength int
	now           func() time.Time
	logger        *elog.Component
}

func NewScheduler(repo repository.NotificationRepository,
	frequency cache.FrequencyCache,
	dominance *priority.DominanceGraph,
	opts ...option.Option[Scheduler],
) *Scheduler {
	s := &Scheduler{
		repo:          repo,
		frequency:     frequency,
		dominance:     dominance,
		queue:         heapx.NewPriorityQueue[*domain.Notification](domain.CompareNotification),
		buffer:        make([]*domain.Notification, 0),
		modeName:      domain.ModeNormal,
		undoCapacity:  stackx.DefaultCapacity,
		summaryLength: DefaultSummaryLength,
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
	option.Apply(s, opts...)
	s.undo = stackx.NewBounded[*domain.Notification](s.undoCapacity)
	return s
}

func WithClock(now func() time.Time) option.Option[Scheduler] {
	return func(s *Scheduler) {
		s.now = now
	}
}

func WithUndoCapacity(capacity int) option.Option[Scheduler] {
	return func(s *Scheduler) {
		if capacity > 0 {
			s.undoCapacity = capacity
		}
	}
}

func WithSummaryLength(length int) option.Option[Scheduler] {
	return func(s *Scheduler) {
		if length > 0 {
			s.summaryLength = length
		}
	}
}

func WithLogger(logger *elog.Component) option.Option[Scheduler] {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// Now 调度器使用的时钟
func (s *Scheduler) Now() time.Time {
	return s.now()
}

// ScheduleNotification 登记、记录频次、推断紧急程度、打分，然后放进队列或者缓冲区。
// 每次调用都会产生新的状态变更，不是幂等的。
func (s *Scheduler) ScheduleNotification(ctx context.Context, n *domain.Notification) domain.SubmitResult {
	if err := s.repo.Save(ctx, n); err != nil {
		s.logger.Error("登记通知失败", elog.String("id", n.ID), elog.FieldErr(err))
	}

	// 到达时间取调度器时钟，撤销恢复也算一次新的到达
	now := s.now()
	cnt, err := s.frequency.Record(ctx, n.Category, now)
	if err != nil {
		// 频次只是打分的一个信号，拿不到就当作 0
		s.logger.Warn("记录频次失败", elog.String("category", n.Category.String()), elog.FieldErr(err))
	}
	freq := recentOthers(cnt)

	n.Urgency = priority.InferUrgency(n.Sender, n.Content)
	n.UpdatePriority(priority.CalculateScore(*n, freq, now))

	if s.dndActive && !priority.CanBypassDND(*n) {
		n.Status = domain.StatusBuffered
		s.buffer = append(s.buffer, n)
		return domain.SubmitResult{ID: n.ID, Status: domain.StatusBuffered, Reason: ReasonDNDActive}
	}

	n.Status = domain.StatusScheduled
	s.queue.Push(n)
	return domain.SubmitResult{ID: n.ID, Status: domain.StatusScheduled, Priority: n.Priority}
}

// SetDNDMode 打开时把队列中不能穿透的通知挪进缓冲区，关闭时把缓冲区全部放回队列
func (s *Scheduler) SetDNDMode(active bool, modeName string) {
	s.dndActive = active
	if modeName == "" {
		modeName = DefaultModeName
	}
	s.modeName = modeName
	if active {
		s.reEvaluateQueueForDND()
		return
	}
	s.flushBuffer()
}

func (s *Scheduler) reEvaluateQueueForDND() {
	s.queue.Rebuild(func(sorted []*domain.Notification) []*domain.Notification {
		kept := make([]*domain.Notification, 0, len(sorted))
		for _, n := range sorted {
			if priority.CanBypassDND(*n) {
				kept = append(kept, n)
				continue
			}
			n.Status = domain.StatusBuffered
			s.buffer = append(s.buffer, n)
		}
		return kept
	})
}

func (s *Scheduler) flushBuffer() {
	for _, n := range s.buffer {
		n.Status = domain.StatusScheduled
		s.queue.Push(n)
	}
	s.buffer = s.buffer[:0]
}

// ApplyAdaptiveAging 用当前频次和同一个 now 重新给队列里的通知打分，然后整体重建队列。
// 频次读取失败的类型按 0 处理，错误汇总后返回。
func (s *Scheduler) ApplyAdaptiveAging(ctx context.Context) error {
	now := s.now()
	var faults error
	s.queue.Rebuild(func(sorted []*domain.Notification) []*domain.Notification {
		var counts map[domain.Category]int
		counts, faults = s.frequencies(ctx, sorted)
		for _, n := range sorted {
			n.UpdatePriority(priority.CalculateScore(*n, recentOthers(counts[n.Category]), now))
		}
		return sorted
	})
	return faults
}

// frequencies 并发读取出现过的类型的频次，Redis 实现下每个类型一次往返
func (s *Scheduler) frequencies(ctx context.Context, ns []*domain.Notification) (map[domain.Category]int, error) {
	seen := make(map[domain.Category]struct{}, len(domain.Categories))
	categories := make([]domain.Category, 0, len(domain.Categories))
	for _, n := range ns {
		if _, ok := seen[n.Category]; !ok {
			seen[n.Category] = struct{}{}
			categories = append(categories, n.Category)
		}
	}

	values := make([]int, len(categories))
	faults := make([]error, len(categories))
	var eg errgroup.Group
	for i, c := range categories {
		eg.Go(func() error {
			cnt, err := s.frequency.Count(ctx, c)
			if err != nil {
				// 单个类型失败不影响其他类型
				faults[i] = fmt.Errorf("类型 %s: %w", c, err)
				return nil
			}
			values[i] = cnt
			return nil
		})
	}
	_ = eg.Wait()

	counts := make(map[domain.Category]int, len(categories))
	var res error
	for i, c := range categories {
		counts[c] = values[i]
		if faults[i] != nil {
			res = multierror.Append(res, faults[i])
		}
	}
	return counts, res
}

// DeleteNotification 先找队列再找缓冲区，找到就压入撤销栈。
// 已经投递或者已经删除的通知返回 false，不算错误。
func (s *Scheduler) DeleteNotification(ctx context.Context, id string) bool {
	if removed, ok := s.queue.RemoveFunc(func(n *domain.Notification) bool { return n.ID == id }); ok {
		// 撤销栈里放登记表中的那一份
		n, err := s.repo.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("登记表中找不到被删除的通知", elog.String("id", id), elog.FieldErr(err))
			n = removed
		}
		n.Status = domain.StatusDeleted
		s.undo.Push(n)
		return true
	}

	for i, n := range s.buffer {
		if n.ID == id {
			s.buffer = append(s.buffer[:i], s.buffer[i+1:]...)
			n.Status = domain.StatusDeleted
			s.undo.Push(n)
			return true
		}
	}
	return false
}

// RestoreLastDeleted 弹出最近删除的通知并重新走一遍调度，会重新推断紧急程度和打分
func (s *Scheduler) RestoreLastDeleted(ctx context.Context) domain.UndoResult {
	n, ok := s.undo.Pop()
	if !ok {
		return domain.UndoResult{Message: NothingToRestore}
	}
	s.ScheduleNotification(ctx, n)
	return domain.UndoResult{Restored: true, Content: n.Content}
}

// GetNextNotification 取出优先级最高的通知，出队即视为已投递
func (s *Scheduler) GetNextNotification() (*domain.Notification, bool) {
	n, ok := s.queue.Pop()
	if !ok {
		return nil, false
	}
	n.Status = domain.StatusDelivered
	return n, true
}

// SummaryBatch 缓冲区的概况
func (s *Scheduler) SummaryBatch() string {
	if len(s.buffer) == 0 {
		return EmptyBufferSummary
	}
	return fmt.Sprintf("%d notifications buffered.", len(s.buffer))
}

// NotificationSummary 截断内容得到的摘要
func (s *Scheduler) NotificationSummary(ctx context.Context, id string) string {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return NotFoundSummary
	}
	return n.Summary(s.summaryLength)
}

// Queued 投递队列的有序快照
func (s *Scheduler) Queued() []*domain.Notification {
	return s.queue.Sorted()
}

// Buffered 缓冲区快照，保持进入缓冲区的顺序
func (s *Scheduler) Buffered() []*domain.Notification {
	res := make([]*domain.Notification, len(s.buffer))
	copy(res, s.buffer)
	return res
}

func (s *Scheduler) UndoDepth() int {
	return s.undo.Len()
}

func (s *Scheduler) IsDND() bool {
	return s.dndActive
}

// Mode 免打扰关闭时固定为 Normal
func (s *Scheduler) Mode() string {
	if !s.dndActive {
		return domain.ModeNormal
	}
	return s.modeName
}

func (s *Scheduler) AddDominanceRule(dominant, subordinate domain.Category) {
	s.dominance.AddRule(dominant, subordinate)
}

func (s *Scheduler) IsDominant(a, b domain.Category) bool {
	return s.dominance.IsDominant(a, b)
}

// recentOthers 窗口里除了当前这条之外的数量，类型里的第一条不受频次惩罚
func recentOthers(windowCount int) int {
	return max(windowCount-1, 0)
}
