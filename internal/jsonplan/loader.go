// Package jsonplan loads JSON task plans into the unified plan model. Every
// document is checked against an embedded JSON Schema before decoding, so
// shape errors surface with the offending location instead of as silent
// zero values.
package jsonplan

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/plan"
	"github.com/vk/taskflowgo/internal/task"
)

//go:embed schema.json
var planSchema string

// Loader is the JSON-specific implementation of the plan.Loader interface.
type Loader struct {
	schema *jsonschema.Schema
}

// NewLoader creates a new JSON plan loader with the plan schema compiled.
func NewLoader() *Loader {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("plan.schema.json", bytes.NewReader([]byte(planSchema))); err != nil {
		panic(fmt.Sprintf("jsonplan: failed to register embedded schema: %v", err))
	}
	// The embedded schema is part of the binary; failing to compile it is a
	// programmer error.
	return &Loader{schema: compiler.MustCompile("plan.schema.json")}
}

// planDocument is the on-disk JSON shape of a plan.
type planDocument struct {
	Tasks []taskDocument `json:"tasks"`
}

// taskDocument mirrors the request-level task shape from the boundary contract.
type taskDocument struct {
	Title          string   `json:"title"`
	EstimatedHours float64  `json:"estimatedHours"`
	DueDate        string   `json:"dueDate"`
	Dependencies   []string `json:"dependencies"`
}

// Load reads a single JSON plan file, validates it against the schema, and
// translates it into the unified model.
func (l *Loader) Load(ctx context.Context, path string) (*plan.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON plan loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", path, err)
	}

	if err := l.schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("plan file %s failed schema validation: %w", path, err)
	}
	logger.Debug("Schema validation passed.")

	var doc planDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON file %s: %w", path, err)
	}

	model := &plan.Model{Tasks: make([]*task.Task, 0, len(doc.Tasks))}
	for _, td := range doc.Tasks {
		model.Tasks = append(model.Tasks, &task.Task{
			Title:          td.Title,
			EstimatedHours: td.EstimatedHours,
			DueDate:        td.DueDate,
			DependsOn:      td.Dependencies,
		})
	}

	logger.Debug("JSON plan loading complete.", "task_count", len(model.Tasks))
	return model, nil
}
