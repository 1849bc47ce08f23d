// Package hclplan loads task plans written in HCL into the unified plan model.
package hclplan

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/fsutil"
	"github.com/vk/taskflowgo/internal/plan"
)

// Loader is the HCL-specific implementation of the plan.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a plan file.
type fileRoot struct {
	Tasks  []*taskBlock `hcl:"task,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// taskBlock is the raw HCL shape of a `task "title" { ... }` block. The
// scalar attributes stay as expressions so translation can report precise
// type errors per attribute.
type taskBlock struct {
	Title          string         `hcl:"title,label"`
	DependsOn      []string       `hcl:"depends_on,optional"`
	EstimatedHours hcl.Expression `hcl:"estimated_hours,optional"`
	DueDate        hcl.Expression `hcl:"due_date,optional"`
}

// Load parses a single .hcl file or every .hcl file under a directory and
// merges the task blocks into one model, in file-then-declaration order.
func (l *Loader) Load(ctx context.Context, path string) (*plan.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL plan loader started.", "path", path)

	files, err := l.findPlanFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found at %s", path)
	}
	logger.Debug("Discovered HCL plan files.", "count", len(files))

	model := &plan.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Tasks {
			t, err := translateTask(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("invalid task %q in %s: %w", block.Title, file, err)
			}
			model.Tasks = append(model.Tasks, t)
		}
	}

	logger.Debug("HCL plan loading complete.", "task_count", len(model.Tasks))
	return model, nil
}

// findPlanFiles resolves a path into the list of plan files it covers.
func (l *Loader) findPlanFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
