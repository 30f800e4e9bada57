// Package priority 无状态的打分规则：紧急程度推断和优先级计算
package priority

import (
	"strings"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/domain"
)

const (
	// DefaultCategoryWeight 不在权重表里的来源类型
	DefaultCategoryWeight = 20.0

	criticalBonus     = 50.0
	familyUrgentBonus = 150.0
	urgentTextBonus   = 80.0
	emergencyBonus    = 300.0

	freqPenaltyStep = 8.0
	freqPenaltyCap  = 50.0

	// 非豁免类型每等待一分钟扣一分，越等越靠后，保证紧急消息始终在上面
	decayPerMinute = -1.0
)

var (
	categoryWeights = map[domain.Category]float64{
		domain.CategoryEmergency: 100.0,
		domain.CategoryHealth:    80.0,
		domain.CategoryWork:      70.0,
		domain.CategoryCalendar:  60.0,
		domain.CategoryFinance:   60.0,
		domain.CategorySocial:    40.0,
		domain.CategoryNews:      30.0,
	}

	urgencyWeights = map[domain.Urgency]float64{
		domain.UrgencyCritical: 50.0,
		domain.UrgencyHigh:     30.0,
		domain.UrgencyMedium:   10.0,
		domain.UrgencyLow:      0.0,
	}

	// 不参与时间衰减的类型
	agingExempt = map[domain.Category]struct{}{
		domain.CategoryWork:      {},
		domain.CategorySocial:    {},
		domain.CategoryEmergency: {},
	}

	criticalSenders  = []string{"mom", "dad", "wife", "husband", "boss", "manager", "hr"}
	familySenders    = []string{"mom", "dad", "wife", "husband"}
	criticalKeywords = []string{"emergency", "alert", "urgent", "otp", "code", "911"}
	highKeywords     = []string{"fast", "quick", "meeting", "due", "pay"}
	urgentKeywords   = []string{"urgent", "asap"}
)

// InferUrgency 规则有先后，命中即返回：发送者规则优先于关键词规则。
// 不会推断出 LOW。
func InferUrgency(sender, content string) domain.Urgency {
	sender = strings.ToLower(sender)
	content = strings.ToLower(content)

	switch {
	case containsAny(sender, criticalSenders):
		return domain.UrgencyCritical
	case containsAny(content, criticalKeywords):
		return domain.UrgencyCritical
	case containsAny(content, highKeywords):
		return domain.UrgencyHigh
	default:
		return domain.UrgencyMedium
	}
}

// CalculateScore 计算优先级分数。
// 同样的通知、频次和 now 一定得到同样的结果，now 只用于时间衰减。
func CalculateScore(n domain.Notification, recentFreq int, now time.Time) float64 {
	base := CategoryWeight(n.Category)
	freqPenalty := min(float64(recentFreq)*freqPenaltyStep, freqPenaltyCap)

	urgencyScore := urgencyWeights[n.Urgency]
	if n.Urgency == domain.UrgencyCritical {
		urgencyScore += criticalBonus
	}

	content := strings.ToLower(n.Content)
	sender := strings.ToLower(n.Sender)
	isUrgentText := containsAny(content, urgentKeywords)
	// 家人的加急消息排在老板之上，紧急类型之下
	switch {
	case isUrgentText && containsAny(sender, familySenders):
		urgencyScore += familyUrgentBonus
	case isUrgentText:
		urgencyScore += urgentTextBonus
	}

	if n.Category == domain.CategoryEmergency {
		urgencyScore += emergencyBonus
	}

	ageMinutes := now.Sub(n.Timestamp).Minutes()
	ageTerm := ageMinutes * AgingFactor(n.Category)

	return domain.Round2(base + urgencyScore - freqPenalty + ageTerm)
}

// CategoryWeight 未知类型回落到默认权重
func CategoryWeight(c domain.Category) float64 {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return DefaultCategoryWeight
}

func UrgencyWeight(u domain.Urgency) float64 {
	return urgencyWeights[u]
}

func AgingFactor(c domain.Category) float64 {
	if _, ok := agingExempt[c]; ok {
		return 0
	}
	return decayPerMinute
}

// CanBypassDND 紧急类型或者 CRITICAL 级别可以穿透免打扰
func CanBypassDND(n domain.Notification) bool {
	return n.Category == domain.CategoryEmergency || n.Urgency == domain.UrgencyCritical
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
