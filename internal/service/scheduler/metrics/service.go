// Package metrics 为调度服务添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

var _ scheduler.Service = (*Service)(nil)

// Service 为调度服务添加指标收集的装饰器
type Service struct {
	svc scheduler.Service

	durationSummary *prometheus.SummaryVec
	submitCounter   *prometheus.CounterVec
	queueGauge      prometheus.Gauge
	bufferGauge     prometheus.Gauge
	dndGauge        prometheus.Gauge
}

// NewService reg 为空时注册到默认的 Registerer
func NewService(svc scheduler.Service, reg prometheus.Registerer) *Service {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	durationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "scheduler_operation_duration_seconds",
			Help:       "调度服务各操作耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"method"},
	)

	submitCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_submit_total",
			Help: "提交通知总数，按来源类型和调度结果区分",
		},
		[]string{"category", "status"},
	)

	queueGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduler_active_queue_length",
		Help: "投递队列长度",
	})
	bufferGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduler_dnd_buffer_length",
		Help: "免打扰缓冲区长度",
	})
	dndGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduler_dnd_active",
		Help: "免打扰是否开启，1 表示开启",
	})

	reg.MustRegister(durationSummary, submitCounter, queueGauge, bufferGauge, dndGauge)

	return &Service{
		svc:             svc,
		durationSummary: durationSummary,
		submitCounter:   submitCounter,
		queueGauge:      queueGauge,
		bufferGauge:     bufferGauge,
		dndGauge:        dndGauge,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (domain.SubmitResult, error) {
	defer s.observe("Submit", time.Now())
	res, err := s.svc.Submit(ctx, req)
	status := string(res.Status)
	if err != nil {
		status = "failed"
	}
	s.submitCounter.WithLabelValues(req.Category.String(), status).Inc()
	return res, err
}

func (s *Service) ListState(ctx context.Context) domain.State {
	defer s.observe("ListState", time.Now())
	return s.record(s.svc.ListState(ctx))
}

func (s *Service) SetMode(ctx context.Context, active bool, modeName string) domain.State {
	defer s.observe("SetMode", time.Now())
	return s.record(s.svc.SetMode(ctx, active, modeName))
}

func (s *Service) DeleteByID(ctx context.Context, id string) (bool, domain.State) {
	defer s.observe("DeleteByID", time.Now())
	ok, st := s.svc.DeleteByID(ctx, id)
	return ok, s.record(st)
}

func (s *Service) UndoLast(ctx context.Context) (domain.UndoResult, domain.State) {
	defer s.observe("UndoLast", time.Now())
	res, st := s.svc.UndoLast(ctx)
	return res, s.record(st)
}

func (s *Service) Next(ctx context.Context) (domain.Notification, bool) {
	defer s.observe("Next", time.Now())
	n, ok := s.svc.Next(ctx)
	if ok {
		s.queueGauge.Dec()
	}
	return n, ok
}

func (s *Service) Summary(ctx context.Context, id string) string {
	defer s.observe("Summary", time.Now())
	return s.svc.Summary(ctx, id)
}

func (s *Service) AddDominanceRule(ctx context.Context, dominant, subordinate domain.Category) error {
	defer s.observe("AddDominanceRule", time.Now())
	return s.svc.AddDominanceRule(ctx, dominant, subordinate)
}

func (s *Service) IsDominant(ctx context.Context, a, b domain.Category) bool {
	defer s.observe("IsDominant", time.Now())
	return s.svc.IsDominant(ctx, a, b)
}

func (s *Service) ApplyAging(ctx context.Context) error {
	defer s.observe("ApplyAging", time.Now())
	return s.svc.ApplyAging(ctx)
}

func (s *Service) observe(method string, start time.Time) {
	s.durationSummary.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// record 用返回的快照刷新长度指标
func (s *Service) record(st domain.State) domain.State {
	s.queueGauge.Set(float64(len(st.ActiveQueue)))
	s.bufferGauge.Set(float64(len(st.DNDBuffer)))
	if st.IsDND {
		s.dndGauge.Set(1)
	} else {
		s.dndGauge.Set(0)
	}
	return st
}
