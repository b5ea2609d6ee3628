package graph

import "slices"

// Cycles returns every strongly connected component that contains a cycle:
// components of two or more nodes, and single nodes wired to themselves.
// Members are listed in graph order; components are ordered by their first
// member.
func (s *Snapshot) Cycles() [][]string {
	return s.CyclesWhere(nil)
}

// CyclesWhere is Cycles over the edges for which keep returns true. A nil
// keep considers every edge.
func (s *Snapshot) CyclesWhere(keep func(Edge) bool) [][]string {
	t := &tarjan{
		s:       s,
		keep:    keep,
		index:   make(map[string]int, len(s.nodes)),
		lowlink: make(map[string]int, len(s.nodes)),
		onStack: make(map[string]bool, len(s.nodes)),
	}
	for _, n := range s.nodes {
		id := n.Address().String()
		if _, visited := t.index[id]; !visited {
			t.strongConnect(id)
		}
	}

	var cycles [][]string
	for _, comp := range t.components {
		if len(comp) == 1 && !slices.Contains(t.successors(comp[0]), comp[0]) {
			continue
		}
		slices.SortFunc(comp, func(a, b string) int { return s.index[a] - s.index[b] })
		cycles = append(cycles, comp)
	}
	slices.SortFunc(cycles, func(a, b []string) int { return s.index[a[0]] - s.index[b[0]] })
	return cycles
}

// CycleMembers returns the set of node ids that sit on some cycle.
func (s *Snapshot) CycleMembers() map[string]bool {
	return s.CycleMembersWhere(nil)
}

// CycleMembersWhere returns the set of node ids that sit on some cycle made
// of edges for which keep returns true.
func (s *Snapshot) CycleMembersWhere(keep func(Edge) bool) map[string]bool {
	members := make(map[string]bool)
	for _, comp := range s.CyclesWhere(keep) {
		for _, id := range comp {
			members[id] = true
		}
	}
	return members
}

type tarjan struct {
	s          *Snapshot
	keep       func(Edge) bool
	counter    int
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	components [][]string
}

func (t *tarjan) strongConnect(v string) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.successors(v) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}
	var comp []string
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.components = append(t.components, comp)
}

func (t *tarjan) successors(v string) []string {
	if t.keep == nil {
		return t.s.Dependents(v)
	}
	seen := make(map[string]bool)
	var next []string
	for _, e := range t.s.outgoing[v] {
		if !t.keep(e) {
			continue
		}
		dst := t.s.inOwner[e.Target]
		if !seen[dst] {
			seen[dst] = true
			next = append(next, dst)
		}
	}
	return next
}
