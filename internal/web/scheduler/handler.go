package scheduler

import (
	"errors"
	"net/http"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	"gitee.com/flycash/notification-scheduler/internal/service/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const serviceStatus = "Notification Scheduler Online"

var endpoints = []string{
	"GET /list",
	"POST /notify",
	"POST /config/mode",
	"DELETE /notification/:id",
	"POST /undo",
	"POST /next",
	"GET /notification/:id/summary",
	"POST /rules",
	"GET /rules/dominates",
}

// Handler 只做请求解析和结果渲染，调度逻辑都在 scheduler.Service 里
type Handler struct {
	svc    scheduler.Service
	logger *elog.Component
}

func NewHandler(svc scheduler.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/", h.Home)
	server.GET("/list", h.List)
	server.POST("/notify", h.Notify)
	server.POST("/config/mode", h.SetMode)
	server.POST("/undo", h.Undo)
	server.POST("/next", h.Next)
	server.DELETE("/notification/:id", h.Delete)
	server.GET("/notification/:id/summary", h.Summary)
	server.POST("/rules", h.AddRule)
	server.GET("/rules/dominates", h.Dominates)
}

func (h *Handler) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HomeResp{Status: serviceStatus, Endpoints: endpoints})
}

func (h *Handler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newSystemState(h.svc.ListState(ctx.Request.Context())))
}

func (h *Handler) Notify(ctx *gin.Context) {
	var req NotifyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.badRequest(ctx, err)
		return
	}
	raw := req.Category
	if raw == "" {
		raw = req.AppType
	}
	category, err := domain.ParseCategory(raw)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	c := ctx.Request.Context()
	res, err := h.svc.Submit(c, domain.SubmitRequest{
		Content:  req.Content,
		Category: category,
		Sender:   req.Sender,
	})
	if err != nil {
		h.handleError(ctx, "Scheduling Failed", err)
		return
	}
	ctx.JSON(http.StatusOK, NotifyResp{
		Result:      newSubmitResult(res),
		SystemState: newSystemState(h.svc.ListState(c)),
	})
}

func (h *Handler) SetMode(ctx *gin.Context) {
	var req ModeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.badRequest(ctx, err)
		return
	}
	st := h.svc.SetMode(ctx.Request.Context(), *req.Active, req.ModeName)
	ctx.JSON(http.StatusOK, newSystemState(st))
}

// Delete 找不到也返回当前状态
func (h *Handler) Delete(ctx *gin.Context) {
	_, st := h.svc.DeleteByID(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, newSystemState(st))
}

func (h *Handler) Undo(ctx *gin.Context) {
	res, st := h.svc.UndoLast(ctx.Request.Context())
	ctx.JSON(http.StatusOK, UndoResp{
		Result:      newUndoResult(res),
		SystemState: newSystemState(st),
	})
}

func (h *Handler) Next(ctx *gin.Context) {
	n, ok := h.svc.Next(ctx.Request.Context())
	if !ok {
		ctx.JSON(http.StatusOK, NextResp{})
		return
	}
	v := newNotification(domain.View{
		ID:        n.ID,
		Content:   n.Content,
		Sender:    n.Sender,
		Category:  n.Category,
		Priority:  n.Priority,
		Urgency:   n.Urgency,
		Timestamp: float64(n.Timestamp.UnixNano()) / 1e9,
		Status:    n.Status,
		Summary:   h.svc.Summary(ctx.Request.Context(), n.ID),
	})
	ctx.JSON(http.StatusOK, NextResp{Found: true, Notification: &v})
}

func (h *Handler) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, SummaryResp{Summary: h.svc.Summary(ctx.Request.Context(), ctx.Param("id"))})
}

func (h *Handler) AddRule(ctx *gin.Context) {
	var req RuleReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.badRequest(ctx, err)
		return
	}
	dominant, err := domain.ParseCategory(req.Dominant)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}
	subordinate, err := domain.ParseCategory(req.Subordinate)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}
	if err = h.svc.AddDominanceRule(ctx.Request.Context(), dominant, subordinate); err != nil {
		h.handleError(ctx, "Add Rule Failed", err)
		return
	}
	ctx.JSON(http.StatusOK, RuleResp{OK: true})
}

func (h *Handler) Dominates(ctx *gin.Context) {
	a, err := domain.ParseCategory(ctx.Query("a"))
	if err != nil {
		h.badRequest(ctx, err)
		return
	}
	b, err := domain.ParseCategory(ctx.Query("b"))
	if err != nil {
		h.badRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DominatesResp{Dominant: h.svc.IsDominant(ctx.Request.Context(), a, b)})
}

func (h *Handler) badRequest(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{Detail: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, action string, err error) {
	if errors.Is(err, errs.ErrInvalidParameter) {
		h.badRequest(ctx, err)
		return
	}
	h.logger.Error(action, elog.String("path", ctx.FullPath()), elog.FieldErr(err))
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Detail: action + ": " + err.Error()})
}
