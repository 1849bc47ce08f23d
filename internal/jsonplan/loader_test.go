package jsonplan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ValidPlan(t *testing.T) {
	path := writePlanFile(t, `{
		"tasks": [
			{"title": "design", "estimatedHours": 8, "dueDate": "2026-09-15"},
			{"title": "build", "dependencies": ["design"]},
			{"title": "ship", "dependencies": ["design", "build"], "estimatedHours": 1.5}
		]
	}`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 3)

	assert.Equal(t, "design", model.Tasks[0].Title)
	assert.Equal(t, 8.0, model.Tasks[0].EstimatedHours)
	assert.Equal(t, "2026-09-15", model.Tasks[0].DueDate)
	assert.Equal(t, []string{"design"}, model.Tasks[1].DependsOn)
	assert.Equal(t, []string{"design", "build"}, model.Tasks[2].DependsOn)
}

func TestLoad_EmptyTaskListIsStructurallyValid(t *testing.T) {
	// The schema only checks shape; rejecting an empty plan is the
	// scheduler's job so the caller sees the dedicated error kind.
	path := writePlanFile(t, `{"tasks": []}`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, model.Tasks)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writePlanFile(t, `{"tasks": [`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("missing title", func(t *testing.T) {
		path := writePlanFile(t, `{"tasks": [{"dependencies": ["a"]}]}`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "schema validation")
	})

	t.Run("wrong estimatedHours type", func(t *testing.T) {
		path := writePlanFile(t, `{"tasks": [{"title": "a", "estimatedHours": "lots"}]}`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "schema validation")
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writePlanFile(t, `{"tasks": [{"title": "a", "priority": 1}]}`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "schema validation")
	})
}
