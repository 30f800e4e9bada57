package tracing

import (
	"testing"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	schedulermocks "gitee.com/flycash/notification-scheduler/internal/service/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		res        domain.SubmitResult
		err        error
		wantStatus codes.Code
	}{
		{
			name:       "调度成功",
			res:        domain.SubmitResult{ID: "42", Status: domain.StatusScheduled, Priority: 140},
			wantStatus: codes.Unset,
		},
		{
			name:       "参数错误",
			err:        errs.ErrInvalidParameter,
			wantStatus: codes.Error,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockSvc := schedulermocks.NewMockService(ctrl)
			mockSvc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tc.res, tc.err)

			sr, tp := newRecorder()
			svc := NewService(mockSvc, tp)
			_, err := svc.Submit(t.Context(), domain.SubmitRequest{Content: "Call me back", Sender: "Mom", Category: domain.CategorySocial})
			assert.ErrorIs(t, err, tc.err)

			spans := sr.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "Scheduler.Submit", spans[0].Name())
			assert.Equal(t, tc.wantStatus, spans[0].Status().Code)

			category, ok := attrValue(spans[0].Attributes(), "notification.category")
			require.True(t, ok)
			assert.Equal(t, "social", category.AsString())
			if tc.err == nil {
				id, ok := attrValue(spans[0].Attributes(), "notification.id")
				require.True(t, ok)
				assert.Equal(t, "42", id.AsString())
			}
		})
	}
}

func TestService_ListStateError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockSvc := schedulermocks.NewMockService(ctrl)
	mockSvc.EXPECT().ListState(gomock.Any()).Return(domain.ErrorState("boom"))

	sr, tp := newRecorder()
	svc := NewService(mockSvc, tp)
	st := svc.ListState(t.Context())
	assert.Equal(t, domain.ModeError, st.Mode)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "Server Logic Error: boom", spans[0].Status().Description)
}

func TestService_DeleteByID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockSvc := schedulermocks.NewMockService(ctrl)
	mockSvc.EXPECT().DeleteByID(gomock.Any(), "7").Return(true, domain.State{Mode: domain.ModeNormal})

	sr, tp := newRecorder()
	svc := NewService(mockSvc, tp)
	ok, _ := svc.DeleteByID(t.Context(), "7")
	assert.True(t, ok)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	deleted, found := attrValue(spans[0].Attributes(), "notification.deleted")
	require.True(t, found)
	assert.True(t, deleted.AsBool())
}
