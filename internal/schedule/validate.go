package schedule

import (
	"github.com/vk/taskflowgo/internal/task"
)

// validate rejects a structurally unusable plan before any graph state is
// allocated. It checks, in order: plan is non-empty, titles are unique, and
// every dependency reference resolves to a task in the same plan. The first
// offending task/dependency pair in encounter order is the one reported, so
// the error is deterministic for a fixed input ordering.
func validate(tasks []*task.Task) error {
	if len(tasks) == 0 {
		return ErrEmptyPlan
	}

	titles := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, exists := titles[t.Title]; exists {
			return &DuplicateTitleError{Title: t.Title}
		}
		titles[t.Title] = struct{}{}
	}

	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := titles[dep]; !ok {
				return &UnknownDependencyError{Task: t.Title, Missing: dep}
			}
		}
	}

	return nil
}
