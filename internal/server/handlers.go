package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/schedule"
	"github.com/vk/taskflowgo/internal/task"
)

// ScheduleRequest is the wire shape of a scheduling call. ProjectID is a
// routing concern only; the scheduler never reads it.
type ScheduleRequest struct {
	ProjectID string      `json:"projectId"`
	Tasks     []TaskInput `json:"tasks" binding:"required"`
}

// TaskInput is one task as submitted by the caller.
type TaskInput struct {
	Title          string   `json:"title" binding:"required"`
	EstimatedHours float64  `json:"estimatedHours" binding:"omitempty,gte=0"`
	DueDate        string   `json:"dueDate"`
	Dependencies   []string `json:"dependencies"`
}

// ScheduleResponse carries the computed order back to the caller.
type ScheduleResponse struct {
	ProjectID        string   `json:"projectId,omitempty"`
	RecommendedOrder []string `json:"recommendedOrder"`
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// handleSchedule validates the request body, runs the scheduler and maps its
// error kinds onto HTTP statuses: structural input problems are 400, a
// dependency cycle is 422 since the document itself is well-formed.
func handleSchedule(c *gin.Context) {
	logger := ctxlog.FromContext(c.Request.Context())

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Request binding failed.", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	tasks := make([]*task.Task, 0, len(req.Tasks))
	for _, in := range req.Tasks {
		tasks = append(tasks, &task.Task{
			Title:          in.Title,
			EstimatedHours: in.EstimatedHours,
			DueDate:        in.DueDate,
			DependsOn:      in.Dependencies,
		})
	}

	order, err := schedule.Order(c.Request.Context(), tasks)
	if err != nil {
		status, body := scheduleError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		ProjectID:        req.ProjectID,
		RecommendedOrder: order,
	})
}

// scheduleError translates the scheduler's error taxonomy into a status code
// and a response body with enough context for the caller to fix the input.
func scheduleError(err error) (int, gin.H) {
	var unknownErr *schedule.UnknownDependencyError
	var dupErr *schedule.DuplicateTitleError
	var cycleErr *schedule.CycleError

	switch {
	case errors.Is(err, schedule.ErrEmptyPlan):
		return http.StatusBadRequest, gin.H{
			"error": "plan contains no tasks",
			"kind":  "empty_plan",
		}
	case errors.As(err, &unknownErr):
		return http.StatusBadRequest, gin.H{
			"error":   unknownErr.Error(),
			"kind":    "unknown_dependency",
			"task":    unknownErr.Task,
			"missing": unknownErr.Missing,
		}
	case errors.As(err, &dupErr):
		return http.StatusBadRequest, gin.H{
			"error": dupErr.Error(),
			"kind":  "duplicate_title",
			"title": dupErr.Title,
		}
	case errors.As(err, &cycleErr):
		return http.StatusUnprocessableEntity, gin.H{
			"error":      cycleErr.Error(),
			"kind":       "dependency_cycle",
			"unresolved": cycleErr.Unresolved,
		}
	default:
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	}
}

// bindingMessage flattens gin's validator errors into a single actionable
// message instead of the raw struct-path dump.
func bindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Sprintf("invalid request body: %v", err)
	}
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("field %q is required", fe.Field())
		case "gte":
			return fmt.Sprintf("field %q must be >= %s", fe.Field(), fe.Param())
		}
	}
	return fmt.Sprintf("invalid request body: %v", err)
}
