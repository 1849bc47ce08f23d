package schedule

import (
	"github.com/vk/taskflowgo/internal/task"
)

// graph is the indexed adjacency form of a validated plan. Titles map to a
// dense index into fixed-size slices, so edge insertion is O(1) and a full
// build is O(tasks + edges). Index order is plan order, which is what makes
// the sequencer's output reproducible for a fixed input.
type graph struct {
	// titles holds each task title at its assigned index, in plan order.
	titles []string
	// index is the reverse mapping from title to assigned index.
	index map[string]int
	// indegree counts the not-yet-satisfied dependencies of each task.
	indegree []int
	// successors lists, for each task, the indexes of tasks that depend on it.
	successors [][]int
	// edges is the total number of distinct dependency edges.
	edges int
}

// buildGraph constructs the successor lists and indegree counters from a
// validated plan. A dependency listed twice by the same task counts as one
// edge; Kahn's expansion completes each predecessor only once, so counting
// duplicates would leave the dependent permanently blocked.
func buildGraph(tasks []*task.Task) *graph {
	g := &graph{
		titles:     make([]string, len(tasks)),
		index:      make(map[string]int, len(tasks)),
		indegree:   make([]int, len(tasks)),
		successors: make([][]int, len(tasks)),
	}

	for i, t := range tasks {
		g.titles[i] = t.Title
		g.index[t.Title] = i
	}

	for i, t := range tasks {
		var seen map[int]struct{}
		if len(t.DependsOn) > 1 {
			seen = make(map[int]struct{}, len(t.DependsOn))
		}
		for _, dep := range t.DependsOn {
			j := g.index[dep]
			if seen != nil {
				if _, dup := seen[j]; dup {
					continue
				}
				seen[j] = struct{}{}
			}
			g.successors[j] = append(g.successors[j], i)
			g.indegree[i]++
			g.edges++
		}
	}

	return g
}
