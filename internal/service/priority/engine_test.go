package priority

import (
	"testing"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInferUrgency(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		sender  string
		content string
		want    domain.Urgency
	}{
		{name: "家人", sender: "Mom", content: "Call me back", want: domain.UrgencyCritical},
		{name: "老板大小写不敏感", sender: "MY BOSS", content: "hello", want: domain.UrgencyCritical},
		{name: "HR", sender: "hr-team", content: "lunch", want: domain.UrgencyCritical},
		{name: "验证码", sender: "Bank", content: "Your OTP is 1234", want: domain.UrgencyCritical},
		{name: "紧急关键词", sender: "Bot", content: "Smoke ALERT in kitchen", want: domain.UrgencyCritical},
		{name: "会议", sender: "Calendar", content: "Meeting at 3pm", want: domain.UrgencyHigh},
		{name: "账单到期", sender: "Utility", content: "Bill is due tomorrow", want: domain.UrgencyHigh},
		{name: "无规则命中", sender: "Promo", content: "50% Off", want: domain.UrgencyMedium},
		{name: "空输入", sender: "", content: "", want: domain.UrgencyMedium},
		// critical 关键词优先于 high 关键词
		{name: "关键词先后", sender: "Ops", content: "urgent meeting", want: domain.UrgencyCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, InferUrgency(tc.sender, tc.content))
		})
	}
}

func TestCalculateScore(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		n    domain.Notification
		freq int
		want float64
	}{
		{
			name: "家人社交消息",
			n: domain.Notification{
				Content: "Call me back", Sender: "Mom", Category: domain.CategorySocial,
				Urgency: domain.UrgencyCritical, Timestamp: now,
			},
			want: 140,
		},
		{
			name: "普通新闻",
			n: domain.Notification{
				Content: "50% Off", Sender: "Promo", Category: domain.CategoryNews,
				Urgency: domain.UrgencyMedium, Timestamp: now,
			},
			want: 40,
		},
		{
			name: "家人加急",
			n: domain.Notification{
				Content: "come home ASAP", Sender: "Dad", Category: domain.CategorySocial,
				Urgency: domain.UrgencyCritical, Timestamp: now,
			},
			want: 290,
		},
		{
			name: "非家人加急",
			n: domain.Notification{
				Content: "urgent: fix prod", Sender: "Boss", Category: domain.CategoryWork,
				Urgency: domain.UrgencyCritical, Timestamp: now,
			},
			want: 250,
		},
		{
			name: "紧急类型",
			n: domain.Notification{
				Content: "Flood warning", Sender: "Gov", Category: domain.CategoryEmergency,
				Urgency: domain.UrgencyMedium, Timestamp: now,
			},
			want: 410,
		},
		{
			name: "频率惩罚",
			n: domain.Notification{
				Content: "like", Sender: "Friend", Category: domain.CategorySocial,
				Urgency: domain.UrgencyMedium, Timestamp: now,
			},
			freq: 3,
			want: 26,
		},
		{
			name: "频率惩罚封顶",
			n: domain.Notification{
				Content: "like", Sender: "Friend", Category: domain.CategorySocial,
				Urgency: domain.UrgencyMedium, Timestamp: now,
			},
			freq: 100,
			want: 0,
		},
		{
			name: "非豁免类型随时间衰减",
			n: domain.Notification{
				Content: "50% Off", Sender: "Promo", Category: domain.CategoryNews,
				Urgency: domain.UrgencyMedium, Timestamp: now.Add(-10 * time.Minute),
			},
			want: 30,
		},
		{
			name: "豁免类型不衰减",
			n: domain.Notification{
				Content: "standup", Sender: "Team", Category: domain.CategoryWork,
				Urgency: domain.UrgencyMedium, Timestamp: now.Add(-10 * time.Minute),
			},
			want: 80,
		},
		{
			name: "衰减保留两位小数",
			n: domain.Notification{
				Content: "Checkup", Sender: "Clinic", Category: domain.CategoryHealth,
				Urgency: domain.UrgencyLow, Timestamp: now.Add(-20 * time.Second),
			},
			want: 79.67,
		},
		{
			name: "未知类型默认权重",
			n: domain.Notification{
				Content: "x", Sender: "y", Category: domain.Category("gaming"),
				Urgency: domain.UrgencyLow, Timestamp: now,
			},
			want: DefaultCategoryWeight,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, CalculateScore(tc.n, tc.freq, now), 1e-9)
		})
	}
}

func TestCalculateScore_Deterministic(t *testing.T) {
	t.Parallel()
	now := time.Now()
	n := domain.Notification{
		Content: "invoice due", Sender: "Acme", Category: domain.CategoryFinance,
		Urgency: domain.UrgencyHigh, Timestamp: now.Add(-37 * time.Second),
	}
	first := CalculateScore(n, 2, now)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, CalculateScore(n, 2, now))
	}
}

func TestCanBypassDND(t *testing.T) {
	t.Parallel()
	assert.True(t, CanBypassDND(domain.Notification{Category: domain.CategoryEmergency, Urgency: domain.UrgencyLow}))
	assert.True(t, CanBypassDND(domain.Notification{Category: domain.CategoryNews, Urgency: domain.UrgencyCritical}))
	assert.False(t, CanBypassDND(domain.Notification{Category: domain.CategoryWork, Urgency: domain.UrgencyHigh}))
	assert.False(t, CanBypassDND(domain.Notification{Category: domain.CategoryHealth, Urgency: domain.UrgencyMedium}))
}
