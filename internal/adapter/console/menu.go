package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/umutulay/task-management-system/internal/core/domain"
	"github.com/umutulay/task-management-system/internal/core/ports"
	"github.com/umutulay/task-management-system/pkg/messages"
)

// Menu drives the task service through an interactive numbered menu. It is
// the outer adapter of the application: every error a menu action produces
// is reported to the user and the loop continues, so user input never
// terminates the process.
type Menu struct {
	taskService ports.TaskService
	in          *bufio.Reader
	out         io.Writer
	lang        string
}

func NewMenu(taskService ports.TaskService, in io.Reader, out io.Writer, lang string) *Menu {
	return &Menu{
		taskService: taskService,
		in:          bufio.NewReader(in),
		out:         out,
		lang:        lang,
	}
}

func (m *Menu) Run(ctx context.Context) {
	for {
		m.printMenu()

		choice, err := m.readLine(messages.Get(messages.MsgPromptChoice, m.lang))
		if err != nil {
			// Input stream closed: treat as quit.
			fmt.Fprintln(m.out, messages.Get(messages.MsgGoodbye, m.lang))
			return
		}

		switch choice {
		case "1":
			m.addTask(ctx)
		case "2":
			m.listTasks(ctx, m.taskService.GetAllTasks)
		case "3":
			m.listTasks(ctx, m.taskService.GetTasksSortedByPriority)
		case "4":
			m.updateTaskStatus(ctx)
		case "5":
			m.deleteTask(ctx)
		case "6":
			m.listTasksByStatus(ctx)
		case "7":
			m.listTasks(ctx, m.taskService.GetOverdueTasks)
		case "8":
			m.showSummary(ctx)
		case "0":
			fmt.Fprintln(m.out, messages.Get(messages.MsgGoodbye, m.lang))
			return
		default:
			fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidChoice, m.lang))
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, headerColor(messages.Get(messages.MsgMenuHeader, m.lang)))
	entries := []struct {
		key   string
		label string
	}{
		{"1", messages.MsgMenuAddTask},
		{"2", messages.MsgMenuListTasks},
		{"3", messages.MsgMenuListByPriority},
		{"4", messages.MsgMenuUpdateStatus},
		{"5", messages.MsgMenuDeleteTask},
		{"6", messages.MsgMenuFilterByStatus},
		{"7", messages.MsgMenuOverdueTasks},
		{"8", messages.MsgMenuSummary},
		{"0", messages.MsgMenuQuit},
	}
	for _, entry := range entries {
		fmt.Fprintf(m.out, "%s. %s\n", entry.key, messages.Get(entry.label, m.lang))
	}
}

func (m *Menu) addTask(ctx context.Context) {
	title, err := m.readLine(messages.Get(messages.MsgPromptTitle, m.lang))
	if err != nil {
		return
	}
	description, err := m.readLine(messages.Get(messages.MsgPromptDescription, m.lang))
	if err != nil {
		return
	}
	priority := m.promptPriority()
	dueDate := m.promptDueDate()

	task, err := m.taskService.CreateTask(ctx, domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintf(m.out, "%s: %s\n", messages.Get(messages.MsgTaskCreated, m.lang), renderTask(task))
}

func (m *Menu) listTasks(ctx context.Context, list func(context.Context) ([]*domain.Task, error)) {
	tasks, err := list(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	m.printTasks(tasks)
}

func (m *Menu) listTasksByStatus(ctx context.Context) {
	status, ok := m.promptStatus()
	if !ok {
		fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidStatus, m.lang))
		return
	}

	tasks, err := m.taskService.GetTasksByStatus(ctx, status)
	if err != nil {
		m.reportError(err)
		return
	}
	m.printTasks(tasks)
}

func (m *Menu) updateTaskStatus(ctx context.Context) {
	id, ok := m.promptTaskID()
	if !ok {
		fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidTaskID, m.lang))
		return
	}
	status, ok := m.promptStatus()
	if !ok {
		fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidStatus, m.lang))
		return
	}

	task, err := m.taskService.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintf(m.out, "%s: %s\n", messages.Get(messages.MsgTaskUpdated, m.lang), renderTask(task))
}

func (m *Menu) deleteTask(ctx context.Context) {
	id, ok := m.promptTaskID()
	if !ok {
		fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidTaskID, m.lang))
		return
	}

	if err := m.taskService.DeleteTask(ctx, id); err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintln(m.out, messages.Get(messages.MsgTaskDeleted, m.lang))
}

func (m *Menu) showSummary(ctx context.Context) {
	summary, err := m.taskService.Summary(ctx)
	if err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintf(m.out, "%s: %d\n", messages.Get(messages.MsgSummaryTotal, m.lang), summary.Total)
	fmt.Fprintf(m.out, "%s: %d\n", messages.Get(messages.MsgSummaryCompleted, m.lang), summary.Completed)
	fmt.Fprintf(m.out, "%s: %d\n", messages.Get(messages.MsgSummaryPending, m.lang), summary.Pending)
	fmt.Fprintf(m.out, "%s: %d\n", messages.Get(messages.MsgSummaryOverdue, m.lang), summary.Overdue)
	if summary.HasCompletionRate {
		fmt.Fprintf(m.out, "%s: %.1f%%\n", messages.Get(messages.MsgSummaryCompletionRate, m.lang), summary.CompletionRate)
	}
}

func (m *Menu) printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, messages.Get(messages.MsgNoTasks, m.lang))
		return
	}
	for _, task := range tasks {
		fmt.Fprintln(m.out, renderTask(task))
	}
}

func (m *Menu) reportError(err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		fmt.Fprintln(m.out, messages.Get(messages.MsgTaskNotFound, m.lang))
	case errors.Is(err, domain.ErrTaskValidation):
		fmt.Fprintln(m.out, messages.Get(messages.MsgInvalidTaskPayload, m.lang))
	default:
		zap.L().Error("menu action failed", zap.Error(err))
		fmt.Fprintln(m.out, messages.Get(messages.MsgUnexpectedError, m.lang))
	}
}
