package ioc

import (
	"gitee.com/flycash/notification-scheduler/internal/web/middleware"
	schedulerweb "gitee.com/flycash/notification-scheduler/internal/web/scheduler"
	"github.com/go-kratos/aegis/ratelimit/bbr"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

func InitGinServer(handler *schedulerweb.Handler) *egin.Component {
	type Config struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	}
	var cfg Config
	err := econf.UnmarshalKey("http.cors", &cfg)
	if err != nil {
		panic(err)
	}
	server := egin.Load("server.http").Build()
	server.Use(middleware.CORS(cfg.AllowedOrigins), middleware.Limiter(bbr.NewLimiter()))
	handler.PublicRoutes(server.Engine)
	return server
}

// InitGovernor 暴露 /metrics 和健康检查
func InitGovernor() *egovernor.Component {
	return egovernor.Load("server.governor").Build()
}
