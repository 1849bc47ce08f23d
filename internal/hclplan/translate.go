package hclplan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/task"
)

// translateTask converts a decoded HCL block into the format-agnostic task.
func translateTask(ctx context.Context, block *taskBlock) (*task.Task, error) {
	logger := ctxlog.FromContext(ctx)

	t := &task.Task{
		Title:     block.Title,
		DependsOn: block.DependsOn,
	}

	hours, ok, err := evalValue(block.EstimatedHours, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("estimated_hours: %w", err)
	}
	if ok {
		t.EstimatedHours, _ = hours.AsBigFloat().Float64()
	}

	due, ok, err := evalValue(block.DueDate, cty.String)
	if err != nil {
		return nil, fmt.Errorf("due_date: %w", err)
	}
	if ok {
		t.DueDate = due.AsString()
	}

	logger.Debug("Translated task block.", "title", t.Title, "dependency_count", len(t.DependsOn))
	return t, nil
}

// evalValue evaluates an optional expression with no variable scope and
// converts the result to the wanted cty type. Plan attributes are plain
// literals, so an empty evaluation context is sufficient. The boolean is
// false when the attribute was absent or null.
func evalValue(expr hcl.Expression, want cty.Type) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	if val.IsNull() {
		return cty.NilVal, false, nil
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, false, fmt.Errorf("expected %s: %w", want.FriendlyName(), err)
	}
	return converted, true, nil
}
