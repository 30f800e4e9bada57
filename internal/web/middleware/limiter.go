package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/aegis/ratelimit"
	"github.com/gotomicro/ego/core/elog"
)

// Limiter 过载保护，被拒绝的请求直接返回 429。
// 调度状态全部在内存里，一把锁串行化，CPU 打满时宁可拒绝也不要排队。
func Limiter(l ratelimit.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		done, err := l.Allow()
		if err != nil {
			elog.DefaultLogger.Warn("触发过载保护", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": err.Error()})
			return
		}
		ctx.Next()
		done(ratelimit.DoneInfo{})
	}
}
