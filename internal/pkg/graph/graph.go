package graph

// Directed 有向图，允许重复边，也允许环
type Directed[T comparable] struct {
	adj map[T][]T
}

func NewDirected[T comparable]() *Directed[T] {
	return &Directed[T]{adj: make(map[T][]T)}
}

// AddEdge 追加一条 from -> to 的边，不去重
func (g *Directed[T]) AddEdge(from, to T) {
	g.adj[from] = append(g.adj[from], to)
}

// Neighbors 返回出边的副本，未知节点返回空
func (g *Directed[T]) Neighbors(node T) []T {
	res := make([]T, len(g.adj[node]))
	copy(res, g.adj[node])
	return res
}

// Reachable 广度优先判断 to 是否可以从 from 到达。
// from == to 时返回 false，不认为节点可以零步到达自身。
func (g *Directed[T]) Reachable(from, to T) bool {
	if from == to {
		return false
	}
	visited := map[T]struct{}{}
	queue := []T{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		for _, next := range g.adj[cur] {
			if _, ok := visited[next]; !ok {
				queue = append(queue, next)
			}
		}
	}
	return false
}
