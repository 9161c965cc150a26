package memory

import (
	"context"

	"github.com/umutulay/task-management-system/internal/core/domain"
	"github.com/umutulay/task-management-system/internal/core/ports"
)

// TaskRepository keeps the whole collection in memory: an insertion-ordered
// slice plus a monotonically increasing id counter. Ids are never reused,
// even after a delete. Single-owner, not safe for concurrent use.
type TaskRepository struct {
	tasks  []*domain.Task
	nextID uint64
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{nextID: 1}
}

func (r *TaskRepository) Add(_ context.Context, task domain.Task) (*domain.Task, error) {
	task.ID = r.nextID
	r.nextID++

	stored := task
	r.tasks = append(r.tasks, &stored)
	return &stored, nil
}

func (r *TaskRepository) GetByID(_ context.Context, id uint64) (*domain.Task, error) {
	for _, task := range r.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *TaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}
