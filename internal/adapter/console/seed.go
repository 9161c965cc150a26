package console

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/umutulay/task-management-system/internal/core/domain"
	"github.com/umutulay/task-management-system/internal/core/ports"
)

// SeedDemoTasks loads five sample tasks so the menu has something to show
// on first launch. Demo-only: the core never seeds itself and tests build
// their own fixtures.
func SeedDemoTasks(ctx context.Context, taskService ports.TaskService) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	seeds := []domain.CreateTaskInput{
		{Title: "Write project proposal", Description: "Draft the Q3 project proposal for review", Priority: domain.TaskPriorityHigh, DueDate: &yesterday},
		{Title: "Review pull requests", Description: "Go through the open pull requests in the backlog", Priority: domain.TaskPriorityMedium, DueDate: &tomorrow},
		{Title: "Update dependencies", Description: "Bump outdated modules and check the changelogs", Priority: domain.TaskPriorityLow},
		{Title: "Fix login timeout", Description: "Sessions expire too aggressively on mobile", Priority: domain.TaskPriorityCritical, DueDate: &yesterday},
		{Title: "Prepare sprint demo", Description: "Collect screenshots and talking points for Friday", Priority: domain.TaskPriorityMedium, DueDate: &nextWeek},
	}

	var created []*domain.Task
	for _, seed := range seeds {
		task, err := taskService.CreateTask(ctx, seed)
		if err != nil {
			zap.L().Warn("failed to seed demo task", zap.String("title", seed.Title), zap.Error(err))
			continue
		}
		created = append(created, task)
	}

	if len(created) == 5 {
		if _, err := taskService.UpdateTaskStatus(ctx, created[0].ID, domain.TaskStatusCompleted); err != nil {
			zap.L().Warn("failed to complete demo task", zap.Error(err))
		}
		if _, err := taskService.UpdateTaskStatus(ctx, created[4].ID, domain.TaskStatusInProgress); err != nil {
			zap.L().Warn("failed to start demo task", zap.Error(err))
		}
	}
}
