package domain

// SubmitRequest 入站通知
type SubmitRequest struct {
	Content  string
	Category Category
	Sender   string
}

// SubmitResult 调度结果
type SubmitResult struct {
	ID       string
	Status   Status  // scheduled 或 buffered
	Priority float64 // Status 为 scheduled 时有效
	Reason   string  // Status 为 buffered 时有效
}

// UndoResult 撤销结果，Restored 为 false 时 Message 说明原因
type UndoResult struct {
	Restored bool
	Content  string
	Message  string
}

// View 对外展示的通知快照
type View struct {
	ID        string
	Content   string
	Sender    string
	Category  Category
	Priority  float64
	Urgency   Urgency
	Timestamp float64 // unix 秒
	Status    Status
	Summary   string
}

// State 调度器的整体快照
type State struct {
	Mode          string
	IsDND         bool
	ActiveQueue   []View
	DNDBuffer     []View
	GlobalSummary string
}

const (
	ModeNormal = "Normal"
	ModeError  = "Error"
)

// ErrorState 状态组装失败时返回的兜底快照
func ErrorState(msg string) State {
	return State{
		Mode:          ModeError,
		ActiveQueue:   []View{},
		DNDBuffer:     []View{},
		GlobalSummary: "Server Logic Error: " + msg,
	}
}
