package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirected_Reachable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		edges [][2]string
		from  string
		to    string
		want  bool
	}{
		{
			name:  "直接相连",
			edges: [][2]string{{"a", "b"}},
			from:  "a",
			to:    "b",
			want:  true,
		},
		{
			name:  "传递可达",
			edges: [][2]string{{"a", "b"}, {"b", "c"}},
			from:  "a",
			to:    "c",
			want:  true,
		},
		{
			name:  "反向不可达",
			edges: [][2]string{{"a", "b"}},
			from:  "b",
			to:    "a",
			want:  false,
		},
		{
			name:  "自身不算",
			edges: [][2]string{{"a", "a"}, {"a", "b"}},
			from:  "a",
			to:    "a",
			want:  false,
		},
		{
			name:  "未知节点",
			edges: [][2]string{{"a", "b"}},
			from:  "x",
			to:    "b",
			want:  false,
		},
		{
			name:  "环也能终止",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			from:  "a",
			to:    "d",
			want:  false,
		},
		{
			name:  "环上可达",
			edges: [][2]string{{"a", "b"}, {"b", "a"}, {"b", "c"}},
			from:  "a",
			to:    "c",
			want:  true,
		},
		{
			name:  "重复边",
			edges: [][2]string{{"a", "b"}, {"a", "b"}},
			from:  "a",
			to:    "b",
			want:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewDirected[string]()
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1])
			}
			assert.Equal(t, tc.want, g.Reachable(tc.from, tc.to))
		})
	}
}

func TestDirected_Neighbors(t *testing.T) {
	t.Parallel()
	g := NewDirected[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	assert.Equal(t, []int{2, 2, 3}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(4))

	// 返回的是副本
	ns := g.Neighbors(1)
	ns[0] = 100
	assert.Equal(t, []int{2, 2, 3}, g.Neighbors(1))
}
