package tracing

import (
	"context"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "notification-scheduler/scheduler"

var _ scheduler.Service = (*Service)(nil)

// Service 为调度服务添加链路追踪的装饰器
type Service struct {
	svc    scheduler.Service
	tracer trace.Tracer
}

// NewService tp 为空时使用全局的 TracerProvider
func NewService(svc scheduler.Service, tp trace.TracerProvider) *Service {
	tracer := otel.Tracer(instrumentationName)
	if tp != nil {
		tracer = tp.Tracer(instrumentationName)
	}
	return &Service{svc: svc, tracer: tracer}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (domain.SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "Scheduler.Submit",
		trace.WithAttributes(
			attribute.String("notification.category", req.Category.String()),
			attribute.String("notification.sender", req.Sender),
		))
	defer span.End()

	res, err := s.svc.Submit(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.String("notification.id", res.ID),
		attribute.String("notification.status", string(res.Status)),
		attribute.Float64("notification.priority", res.Priority),
	)
	return res, nil
}

func (s *Service) ListState(ctx context.Context) domain.State {
	ctx, span := s.tracer.Start(ctx, "Scheduler.ListState")
	defer span.End()
	return s.endWithState(span, s.svc.ListState(ctx))
}

func (s *Service) SetMode(ctx context.Context, active bool, modeName string) domain.State {
	ctx, span := s.tracer.Start(ctx, "Scheduler.SetMode",
		trace.WithAttributes(
			attribute.Bool("dnd.active", active),
			attribute.String("dnd.mode", modeName),
		))
	defer span.End()
	return s.endWithState(span, s.svc.SetMode(ctx, active, modeName))
}

func (s *Service) DeleteByID(ctx context.Context, id string) (bool, domain.State) {
	ctx, span := s.tracer.Start(ctx, "Scheduler.DeleteByID",
		trace.WithAttributes(attribute.String("notification.id", id)))
	defer span.End()
	ok, st := s.svc.DeleteByID(ctx, id)
	span.SetAttributes(attribute.Bool("notification.deleted", ok))
	return ok, s.endWithState(span, st)
}

func (s *Service) UndoLast(ctx context.Context) (domain.UndoResult, domain.State) {
	ctx, span := s.tracer.Start(ctx, "Scheduler.UndoLast")
	defer span.End()
	res, st := s.svc.UndoLast(ctx)
	span.SetAttributes(attribute.Bool("undo.restored", res.Restored))
	return res, s.endWithState(span, st)
}

func (s *Service) Next(ctx context.Context) (domain.Notification, bool) {
	ctx, span := s.tracer.Start(ctx, "Scheduler.Next")
	defer span.End()
	n, ok := s.svc.Next(ctx)
	if ok {
		span.SetAttributes(
			attribute.String("notification.id", n.ID),
			attribute.Float64("notification.priority", n.Priority),
		)
	}
	return n, ok
}

func (s *Service) Summary(ctx context.Context, id string) string {
	ctx, span := s.tracer.Start(ctx, "Scheduler.Summary",
		trace.WithAttributes(attribute.String("notification.id", id)))
	defer span.End()
	return s.svc.Summary(ctx, id)
}

func (s *Service) AddDominanceRule(ctx context.Context, dominant, subordinate domain.Category) error {
	ctx, span := s.tracer.Start(ctx, "Scheduler.AddDominanceRule",
		trace.WithAttributes(
			attribute.String("rule.dominant", dominant.String()),
			attribute.String("rule.subordinate", subordinate.String()),
		))
	defer span.End()
	err := s.svc.AddDominanceRule(ctx, dominant, subordinate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *Service) IsDominant(ctx context.Context, a, b domain.Category) bool {
	ctx, span := s.tracer.Start(ctx, "Scheduler.IsDominant")
	defer span.End()
	return s.svc.IsDominant(ctx, a, b)
}

func (s *Service) ApplyAging(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "Scheduler.ApplyAging")
	defer span.End()
	err := s.svc.ApplyAging(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *Service) endWithState(span trace.Span, st domain.State) domain.State {
	span.SetAttributes(
		attribute.Int("scheduler.active_queue", len(st.ActiveQueue)),
		attribute.Int("scheduler.dnd_buffer", len(st.DNDBuffer)),
		attribute.Bool("scheduler.is_dnd", st.IsDND),
	)
	if st.Mode == domain.ModeError {
		span.SetStatus(codes.Error, st.GlobalSummary)
	}
	return st
}
