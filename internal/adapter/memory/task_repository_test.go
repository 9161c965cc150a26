package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umutulay/task-management-system/internal/adapter/memory"
	"github.com/umutulay/task-management-system/internal/core/domain"
)

func newTask(title string) domain.Task {
	return domain.NewTask(domain.CreateTaskInput{Title: title, Description: "d"})
}

func TestAdd_AssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	for i := uint64(1); i <= 5; i++ {
		task, err := repo.Add(ctx, newTask("task"))
		require.NoError(t, err)
		require.Equal(t, i, task.ID)
	}
}

func TestAdd_NeverReusesIDsAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	first, err := repo.Add(ctx, newTask("first"))
	require.NoError(t, err)
	require.Equal(t, uint64(1), first.ID)

	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Add(ctx, newTask("second"))
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.ID)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, uint64(2), tasks[0].ID)
}

func TestGetByID_ReturnsLivePointer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	created, err := repo.Add(ctx, newTask("task"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	got.Status = domain.TaskStatusInProgress

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, again.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	_, err := repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	err := repo.Delete(ctx, 42)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDelete_RemovesOnlyTargetTask(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	for _, title := range []string{"a", "b", "c"} {
		_, err := repo.Add(ctx, newTask(title))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, 2))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "a", tasks[0].Title)
	require.Equal(t, "c", tasks[1].Title)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := repo.Add(ctx, newTask(title))
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, len(titles))
	for i, title := range titles {
		require.Equal(t, title, tasks[i].Title)
	}
}

func TestList_ReturnsDetachedSlice(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	_, err := repo.Add(ctx, newTask("a"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, newTask("b"))
	require.NoError(t, err)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	tasks[0], tasks[1] = tasks[1], tasks[0]

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", again[0].Title)
	require.Equal(t, "b", again[1].Title)
}
