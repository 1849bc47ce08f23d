package hclplan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writePlanFile(t, dir, "plan.hcl", `
task "design" {
  estimated_hours = 8
  due_date        = "2026-09-15"
}

task "build" {
  depends_on = ["design"]
}

task "ship" {
  depends_on      = ["design", "build"]
  estimated_hours = 1.5
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 3)

	design := model.Tasks[0]
	assert.Equal(t, "design", design.Title)
	assert.Empty(t, design.DependsOn)
	assert.Equal(t, 8.0, design.EstimatedHours)
	assert.Equal(t, "2026-09-15", design.DueDate)

	build := model.Tasks[1]
	assert.Equal(t, "build", build.Title)
	assert.Equal(t, []string{"design"}, build.DependsOn)
	assert.Zero(t, build.EstimatedHours)
	assert.Empty(t, build.DueDate)

	ship := model.Tasks[2]
	assert.Equal(t, []string{"design", "build"}, ship.DependsOn)
	assert.Equal(t, 1.5, ship.EstimatedHours)
}

func TestLoad_DirectoryMergesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writePlanFile(t, dir, "a_first.hcl", `task "one" {}`)
	writePlanFile(t, dir, "b_second.hcl", `task "two" { depends_on = ["one"] }`)
	writePlanFile(t, dir, "notes.txt", "ignored")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 2)
	assert.Equal(t, "one", model.Tasks[0].Title)
	assert.Equal(t, "two", model.Tasks[1].Title)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("directory without plan files", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		assert.ErrorContains(t, err, "no .hcl plan files found")
	})

	t.Run("malformed hcl", func(t *testing.T) {
		dir := t.TempDir()
		path := writePlanFile(t, dir, "broken.hcl", `task "a" {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("wrong attribute type", func(t *testing.T) {
		dir := t.TempDir()
		path := writePlanFile(t, dir, "typed.hcl", `
task "a" {
  estimated_hours = "lots"
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "estimated_hours")
	})
}
