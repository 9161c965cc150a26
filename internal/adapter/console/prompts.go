package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/umutulay/task-management-system/internal/core/domain"
	"github.com/umutulay/task-management-system/pkg/messages"
)

const dueDateLayout = "2006-01-02"

func (m *Menu) readLine(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPriority falls back to Medium on blank or unparseable input rather
// than failing the whole create flow.
func (m *Menu) promptPriority() domain.TaskPriority {
	line, err := m.readLine(messages.Get(messages.MsgPromptPriority, m.lang))
	if err != nil || line == "" {
		return domain.TaskPriorityMedium
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return domain.TaskPriorityMedium
	}

	priority := domain.TaskPriority(value)
	if !priority.Valid() {
		return domain.TaskPriorityMedium
	}
	return priority
}

// promptDueDate treats blank or unparseable input as "no due date".
func (m *Menu) promptDueDate() *time.Time {
	line, err := m.readLine(messages.Get(messages.MsgPromptDueDate, m.lang))
	if err != nil || line == "" {
		return nil
	}

	dueDate, err := time.Parse(dueDateLayout, line)
	if err != nil {
		return nil
	}
	return &dueDate
}

func (m *Menu) promptTaskID() (uint64, bool) {
	line, err := m.readLine(messages.Get(messages.MsgPromptTaskID, m.lang))
	if err != nil {
		return 0, false
	}

	id, err := strconv.ParseUint(line, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func (m *Menu) promptStatus() (domain.TaskStatus, bool) {
	line, err := m.readLine(messages.Get(messages.MsgPromptStatus, m.lang))
	if err != nil {
		return "", false
	}

	switch line {
	case "1":
		return domain.TaskStatusPending, true
	case "2":
		return domain.TaskStatusInProgress, true
	case "3":
		return domain.TaskStatusCompleted, true
	case "4":
		return domain.TaskStatusCancelled, true
	default:
		return "", false
	}
}
