package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPlan is returned when a scheduling request contains no tasks.
var ErrEmptyPlan = errors.New("plan contains no tasks")

// UnknownDependencyError reports the first dependency reference, in encounter
// order, that does not match any task title in the plan.
type UnknownDependencyError struct {
	Task    string
	Missing string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("task %q depends on unknown task %q", e.Task, e.Missing)
}

// DuplicateTitleError reports a plan where two tasks share the same title.
// Titles are the join key for dependencies, so a collision makes the plan
// ambiguous and it is rejected rather than silently collapsed.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("duplicate task title %q", e.Title)
}

// CycleError reports that the dependency relation is not acyclic. Unresolved
// holds, in plan order, every task that never became schedulable; it is a
// superset of the cycle itself since tasks that merely depend on a cycle are
// also blocked.
type CycleError struct {
	Unresolved []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected, unresolved tasks: %s", strings.Join(e.Unresolved, ", "))
}
