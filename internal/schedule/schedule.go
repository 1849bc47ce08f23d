package schedule

import (
	"context"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/task"
)

// Order computes an execution order for the given tasks in which every task
// appears after all of its declared dependencies. It allocates fresh state
// per call and performs no I/O, so concurrent calls are independent.
//
// On failure it returns one of ErrEmptyPlan, *DuplicateTitleError,
// *UnknownDependencyError or *CycleError, all of which are request-scoped
// and correctable by the caller.
func Order(ctx context.Context, tasks []*task.Task) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validate(tasks); err != nil {
		return nil, err
	}
	logger.Debug("Plan validation passed.", "task_count", len(tasks))

	g := buildGraph(tasks)
	logger.Debug("Dependency graph built.", "node_count", len(g.titles), "edge_count", g.edges)

	order, err := g.sequence()
	if err != nil {
		return nil, err
	}
	logger.Debug("Sequencing complete.", "order_length", len(order))

	return order, nil
}
