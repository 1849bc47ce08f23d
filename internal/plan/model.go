// Package plan defines the format-agnostic representation of a scheduling
// request and the interface format-specific loaders implement.
package plan

import (
	"context"

	"github.com/vk/taskflowgo/internal/task"
)

// Model is the unified representation of a task plan, regardless of which
// on-disk format it was loaded from.
type Model struct {
	Tasks []*task.Task
}

// Loader is the interface for a format-specific plan loader. Load reads one
// file or a directory of files and translates them into the unified model,
// preserving the order tasks were declared in.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
