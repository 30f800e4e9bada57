package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
)

// Category 通知来源类型
type Category string

const (
	CategorySocial    Category = "social"
	CategoryWork      Category = "work"
	CategoryEmergency Category = "emergency"
	CategoryNews      Category = "news"
	CategoryHealth    Category = "health"
	CategoryFinance   Category = "finance"
	CategoryCalendar  Category = "calendar"
)

// Categories 全部合法的来源类型
var Categories = []Category{
	CategorySocial,
	CategoryWork,
	CategoryEmergency,
	CategoryNews,
	CategoryHealth,
	CategoryFinance,
	CategoryCalendar,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySocial, CategoryWork, CategoryEmergency, CategoryNews,
		CategoryHealth, CategoryFinance, CategoryCalendar:
		return true
	}
	return false
}

// ParseCategory 大小写不敏感
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: Category = %q", errs.ErrInvalidParameter, s)
	}
	return c, nil
}

// Urgency 紧急程度
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Status 通知生命周期状态
type Status string

const (
	StatusPending   Status = "pending"   // 刚创建
	StatusScheduled Status = "scheduled" // 在投递队列中
	StatusBuffered  Status = "buffered"  // 在免打扰缓冲区中
	StatusDelivered Status = "delivered" // 已被取走投递
	StatusDeleted   Status = "deleted"   // 已删除，位于撤销栈
)

const DefaultSender = "Unknown"

// Notification 通知领域模型
type Notification struct {
	ID        string    // 唯一标识，创建后不可变
	Content   string    // 内容
	Sender    string    // 发送者
	Category  Category  // 来源类型
	Timestamp time.Time // 创建时间

	Urgency  Urgency // 由分类推断
	Priority float64 // 优先级分数，只能通过 UpdatePriority 修改
	Status   Status
	Read     bool
}

// NewNotification 创建一条待调度的通知
func NewNotification(id, content, sender string, category Category, ts time.Time) (*Notification, error) {
	n := &Notification{
		ID:        id,
		Content:   content,
		Sender:    sender,
		Category:  category,
		Timestamp: ts,
		Urgency:   UrgencyLow,
		Status:    StatusPending,
	}
	if n.Sender == "" {
		n.Sender = DefaultSender
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("%w: ID = %q", errs.ErrInvalidParameter, n.ID)
	}
	if !n.Category.IsValid() {
		return fmt.Errorf("%w: Category = %q", errs.ErrInvalidParameter, n.Category)
	}
	if !n.Urgency.IsValid() {
		return fmt.Errorf("%w: Urgency = %q", errs.ErrInvalidParameter, n.Urgency)
	}
	if n.Timestamp.IsZero() {
		return fmt.Errorf("%w: Timestamp 不能为空", errs.ErrInvalidParameter)
	}
	return nil
}

// UpdatePriority 唯一的分数修改入口
func (n *Notification) UpdatePriority(score float64) {
	n.Priority = score
}

// SortKey 排序键，分数取反后升序即为优先级降序，同分按时间先后
type SortKey struct {
	NegPriority float64
	Timestamp   time.Time
}

// SortKey 每次调用都从当前分数推导，不单独存储
func (n *Notification) SortKey() SortKey {
	return SortKey{NegPriority: -n.Priority, Timestamp: n.Timestamp}
}

// Compare 按排序键比较，小的优先
func (k SortKey) Compare(other SortKey) int {
	switch {
	case k.NegPriority < other.NegPriority:
		return -1
	case k.NegPriority > other.NegPriority:
		return 1
	}
	return k.Timestamp.Compare(other.Timestamp)
}

// CompareNotification 满足 ekit.Comparator 的签名
func CompareNotification(src, dst *Notification) int {
	return src.SortKey().Compare(dst.SortKey())
}

// Summary 截断后的摘要，不是自然语言摘要
func (n *Notification) Summary(maxRunes int) string {
	content := []rune(n.Content)
	if len(content) > maxRunes {
		content = content[:maxRunes]
	}
	return fmt.Sprintf("Summary: %s said %s...", n.Sender, string(content))
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
