package schedule

// sequence runs Kahn's frontier expansion over the graph. The frontier is a
// FIFO queue seeded with every zero-indegree task in plan order, so ties
// between unconstrained tasks always resolve to their original input order.
func (g *graph) sequence() ([]string, error) {
	queue := make([]int, 0, len(g.titles))
	for i := range g.titles {
		if g.indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]string, 0, len(g.titles))
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		order = append(order, g.titles[i])
		for _, succ := range g.successors[i] {
			g.indegree[succ]--
			if g.indegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != len(g.titles) {
		// Tasks with a residual indegree are in, or downstream of, a cycle.
		var unresolved []string
		for i, deg := range g.indegree {
			if deg > 0 {
				unresolved = append(unresolved, g.titles[i])
			}
		}
		return nil, &CycleError{Unresolved: unresolved}
	}

	return order, nil
}
