package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/aegis/ratelimit"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	err   error
	done  int
	calls int
}

func (f *fakeLimiter) Allow() (ratelimit.DoneFunc, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return func(ratelimit.DoneInfo) {
		f.done++
	}, nil
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantDone int
	}{
		{name: "放行", wantCode: http.StatusOK, wantDone: 1},
		{name: "过载", err: ratelimit.ErrLimitExceed, wantCode: http.StatusTooManyRequests},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := &fakeLimiter{err: tc.err}
			engine := gin.New()
			engine.Use(Limiter(l))
			engine.POST("/notify", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "ok")
			})

			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/notify", nil))

			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, 1, l.calls)
			assert.Equal(t, tc.wantDone, l.done)
		})
	}
}
