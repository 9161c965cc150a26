package ports

import (
	"context"

	"github.com/umutulay/task-management-system/internal/core/domain"
)

// TaskRepository owns the task collection: identity assignment, insertion
// order, lookup and removal. Implementations return tasks by pointer so
// in-place status updates stay visible to callers.
type TaskRepository interface {
	Add(ctx context.Context, task domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uint64) (*domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]*domain.Task, error)
}

// Summary aggregates collection-wide counters. CompletionRate is only
// meaningful when HasCompletionRate is true (the collection is non-empty).
type Summary struct {
	Total             int
	Completed         int
	Pending           int
	Overdue           int
	CompletionRate    float64
	HasCompletionRate bool
}

type TaskService interface {
	CreateTask(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)
	GetTaskByID(ctx context.Context, id uint64) (*domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (*domain.Task, error)
	GetAllTasks(ctx context.Context) ([]*domain.Task, error)
	GetTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)
	GetTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]*domain.Task, error)
	GetOverdueTasks(ctx context.Context) ([]*domain.Task, error)
	GetTasksSortedByPriority(ctx context.Context) ([]*domain.Task, error)
	Summary(ctx context.Context) (Summary, error)
}
