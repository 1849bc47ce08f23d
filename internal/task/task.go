// Package task defines the unit of work the scheduler operates on.
package task

// Task is a single unit of work within one scheduling request. Title is the
// unique join key; DependsOn lists the titles of tasks that must complete
// before this one may start.
type Task struct {
	Title string

	// EstimatedHours and DueDate are accepted from callers and carried
	// through untouched. The ordering algorithm never reads them.
	EstimatedHours float64
	DueDate        string

	DependsOn []string
}
