package priority

import (
	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/pkg/graph"
)

// DominanceGraph 来源类型之间的压制关系：A -> B 表示 A 的通知应当排在 B 前面。
// 与分数无关，允许出现环。
type DominanceGraph struct {
	g *graph.Directed[domain.Category]
}

// NewDominanceGraph 带默认规则
func NewDominanceGraph() *DominanceGraph {
	d := &DominanceGraph{g: graph.NewDirected[domain.Category]()}
	seed := map[domain.Category][]domain.Category{
		domain.CategoryEmergency: {
			domain.CategoryWork, domain.CategorySocial, domain.CategoryNews,
			domain.CategoryHealth, domain.CategoryFinance, domain.CategoryCalendar,
		},
		domain.CategoryHealth:   {domain.CategorySocial, domain.CategoryNews},
		domain.CategoryWork:     {domain.CategorySocial, domain.CategoryNews},
		domain.CategoryFinance:  {domain.CategorySocial},
		domain.CategoryCalendar: {domain.CategorySocial, domain.CategoryNews},
	}
	// 按固定顺序写入，保证出边顺序稳定
	for _, dominant := range domain.Categories {
		for _, sub := range seed[dominant] {
			d.AddRule(dominant, sub)
		}
	}
	return d
}

func (d *DominanceGraph) AddRule(dominant, subordinate domain.Category) {
	d.g.AddEdge(dominant, subordinate)
}

// IsDominant a 能否经由规则链压制 b，a == b 时恒为 false
func (d *DominanceGraph) IsDominant(a, b domain.Category) bool {
	return d.g.Reachable(a, b)
}

func (d *DominanceGraph) Subordinates(c domain.Category) []domain.Category {
	return d.g.Neighbors(c)
}
