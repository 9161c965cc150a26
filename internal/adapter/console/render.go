package console

import (
	"github.com/fatih/color"

	"github.com/umutulay/task-management-system/internal/core/domain"
)

var (
	headerColor    = color.New(color.Bold).SprintFunc()
	overdueColor   = color.New(color.FgRed).SprintFunc()
	completedColor = color.New(color.FgGreen).SprintFunc()
)

// renderTask colorizes the task's one-line summary for the terminal. The
// line content itself comes from the domain so the format stays identical
// with colors disabled.
func renderTask(task *domain.Task) string {
	line := task.Render()
	switch {
	case task.IsOverdue():
		return overdueColor(line)
	case task.Status == domain.TaskStatusCompleted:
		return completedColor(line)
	default:
		return line
	}
}
