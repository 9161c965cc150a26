package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/umutulay/task-management-system/internal/core/domain"
	"github.com/umutulay/task-management-system/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrTaskValidation
	}

	return s.taskRepository.Add(ctx, domain.NewTask(in))
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uint64) (*domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.Delete(ctx, id)
}

// UpdateTaskStatus sets the new status in place. A transition to Completed
// re-stamps CompletedDate; a transition away from Completed leaves the old
// stamp untouched, which product has not confirmed as intended.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (*domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if status == domain.TaskStatusCompleted {
		task.MarkCompleted()
	}
	return task, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.taskRepository.List(ctx)
}

func (s *TaskService) GetTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return t.Status == status
	})
}

func (s *TaskService) GetTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]*domain.Task, error) {
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return t.Priority == priority
	})
}

func (s *TaskService) GetOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.filterTasks(ctx, func(t *domain.Task) bool {
		return t.IsOverdue()
	})
}

// GetTasksSortedByPriority orders Critical first, ties broken by due date
// ascending with undated tasks last. The sort is stable, so equal keys keep
// insertion order.
func (s *TaskService) GetTasksSortedByPriority(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		return dueBefore(tasks[i].DueDate, tasks[j].DueDate)
	})
	return tasks, nil
}

func (s *TaskService) Summary(ctx context.Context) (ports.Summary, error) {
	tasks, err := s.taskRepository.List(ctx)
	if err != nil {
		return ports.Summary{}, err
	}

	summary := ports.Summary{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusCompleted:
			summary.Completed++
		case domain.TaskStatusPending:
			summary.Pending++
		}
		if task.IsOverdue() {
			summary.Overdue++
		}
	}

	if summary.Total > 0 {
		rate := 100 * float64(summary.Completed) / float64(summary.Total)
		summary.CompletionRate = math.Round(rate*10) / 10
		summary.HasCompletionRate = true
	}
	return summary, nil
}

func (s *TaskService) filterTasks(ctx context.Context, keep func(*domain.Task) bool) ([]*domain.Task, error) {
	tasks, err := s.taskRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if keep(task) {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

func dueBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}
