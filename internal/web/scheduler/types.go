package scheduler

import (
	"gitee.com/flycash/notification-scheduler/internal/domain"
)

type NotifyReq struct {
	Content  string `json:"content"`
	Category string `json:"category"`
	// AppType 兼容旧前端的字段名，Category 为空时使用
	AppType string `json:"app_type"`
	Sender  string `json:"sender"`
}

type ModeReq struct {
	Active   *bool  `json:"active" binding:"required"`
	ModeName string `json:"mode_name"`
}

type RuleReq struct {
	Dominant    string `json:"dominant" binding:"required"`
	Subordinate string `json:"subordinate" binding:"required"`
}

type Notification struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	Sender    string  `json:"sender"`
	Category  string  `json:"category"`
	Priority  float64 `json:"priority"`
	Urgency   string  `json:"urgency"`
	Timestamp float64 `json:"timestamp"`
	Status    string  `json:"status"`
	Summary   string  `json:"summary"`
}

type GlobalSummary struct {
	Message string `json:"message"`
}

type SystemState struct {
	Mode          string         `json:"mode"`
	IsDND         bool           `json:"is_dnd"`
	ActiveQueue   []Notification `json:"active_queue"`
	DNDBuffer     []Notification `json:"dnd_buffer"`
	GlobalSummary GlobalSummary  `json:"global_summary"`
}

type SubmitResult struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Priority *float64 `json:"priority,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

type NotifyResp struct {
	Result      SubmitResult `json:"result"`
	SystemState SystemState  `json:"system_state"`
}

type UndoResult struct {
	Action  string `json:"action,omitempty"`
	Content string `json:"content,omitempty"`
	Message string `json:"message,omitempty"`
}

type UndoResp struct {
	Result      UndoResult  `json:"result"`
	SystemState SystemState `json:"system_state"`
}

type NextResp struct {
	Found        bool          `json:"found"`
	Notification *Notification `json:"notification,omitempty"`
}

type SummaryResp struct {
	Summary string `json:"summary"`
}

type RuleResp struct {
	OK bool `json:"ok"`
}

type DominatesResp struct {
	Dominant bool `json:"dominant"`
}

type HomeResp struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

type ErrorResp struct {
	Detail string `json:"detail"`
}

func newNotification(v domain.View) Notification {
	return Notification{
		ID:        v.ID,
		Content:   v.Content,
		Sender:    v.Sender,
		Category:  v.Category.String(),
		Priority:  v.Priority,
		Urgency:   v.Urgency.String(),
		Timestamp: v.Timestamp,
		Status:    string(v.Status),
		Summary:   v.Summary,
	}
}

func newSystemState(st domain.State) SystemState {
	res := SystemState{
		Mode:          st.Mode,
		IsDND:         st.IsDND,
		ActiveQueue:   make([]Notification, 0, len(st.ActiveQueue)),
		DNDBuffer:     make([]Notification, 0, len(st.DNDBuffer)),
		GlobalSummary: GlobalSummary{Message: st.GlobalSummary},
	}
	for _, v := range st.ActiveQueue {
		res.ActiveQueue = append(res.ActiveQueue, newNotification(v))
	}
	for _, v := range st.DNDBuffer {
		res.DNDBuffer = append(res.DNDBuffer, newNotification(v))
	}
	return res
}

func newSubmitResult(r domain.SubmitResult) SubmitResult {
	res := SubmitResult{ID: r.ID, Status: string(r.Status), Reason: r.Reason}
	if r.Status == domain.StatusScheduled {
		p := r.Priority
		res.Priority = &p
	}
	return res
}

func newUndoResult(r domain.UndoResult) UndoResult {
	if !r.Restored {
		return UndoResult{Message: r.Message}
	}
	return UndoResult{Action: "restored", Content: r.Content}
}
