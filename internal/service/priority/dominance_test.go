package priority

import (
	"testing"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDominanceGraph_Seed(t *testing.T) {
	t.Parallel()
	g := NewDominanceGraph()

	testCases := []struct {
		name string
		a    domain.Category
		b    domain.Category
		want bool
	}{
		{name: "紧急压制工作", a: domain.CategoryEmergency, b: domain.CategoryWork, want: true},
		{name: "健康压制新闻", a: domain.CategoryHealth, b: domain.CategoryNews, want: true},
		{name: "财经压制社交", a: domain.CategoryFinance, b: domain.CategorySocial, want: true},
		{name: "财经不压制新闻", a: domain.CategoryFinance, b: domain.CategoryNews, want: false},
		{name: "社交不压制任何类型", a: domain.CategorySocial, b: domain.CategoryNews, want: false},
		{name: "反向不成立", a: domain.CategoryWork, b: domain.CategoryEmergency, want: false},
		{name: "自身不压制自身", a: domain.CategoryEmergency, b: domain.CategoryEmergency, want: false},
		{name: "未知类型", a: domain.Category("unknown"), b: domain.CategorySocial, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, g.IsDominant(tc.a, tc.b))
		})
	}
}

func TestDominanceGraph_AddRule(t *testing.T) {
	t.Parallel()
	g := NewDominanceGraph()

	assert.False(t, g.IsDominant(domain.CategoryFinance, domain.CategoryNews))
	// finance -> calendar -> news
	g.AddRule(domain.CategoryFinance, domain.CategoryCalendar)
	assert.True(t, g.IsDominant(domain.CategoryFinance, domain.CategoryNews))

	// 制造环，查询仍然终止
	g.AddRule(domain.CategorySocial, domain.CategoryFinance)
	assert.True(t, g.IsDominant(domain.CategorySocial, domain.CategoryNews))
	assert.False(t, g.IsDominant(domain.CategorySocial, domain.CategoryEmergency))
	assert.False(t, g.IsDominant(domain.CategorySocial, domain.CategorySocial))

	// 允许重复规则
	g.AddRule(domain.CategoryFinance, domain.CategoryCalendar)
	assert.Equal(t, []domain.Category{
		domain.CategorySocial, domain.CategoryCalendar, domain.CategoryCalendar,
	}, g.Subordinates(domain.CategoryFinance))
}
