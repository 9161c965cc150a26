package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) String() string {
	switch s {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	case TaskStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// TaskPriority is ordered: comparisons and the priority sort rely on the
// numeric values, so they are explicit rather than iota.
type TaskPriority int

const (
	TaskPriorityLow      TaskPriority = 1
	TaskPriorityMedium   TaskPriority = 2
	TaskPriorityHigh     TaskPriority = 3
	TaskPriorityCritical TaskPriority = 4
)

func (p TaskPriority) String() string {
	switch p {
	case TaskPriorityLow:
		return "Low"
	case TaskPriorityMedium:
		return "Medium"
	case TaskPriorityHigh:
		return "High"
	case TaskPriorityCritical:
		return "Critical"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

func (p TaskPriority) Valid() bool {
	return p >= TaskPriorityLow && p <= TaskPriorityCritical
}

type Task struct {
	ID            uint64
	Title         string
	Description   string
	Status        TaskStatus
	Priority      TaskPriority
	CreatedDate   time.Time
	DueDate       *time.Time
	CompletedDate *time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     *time.Time
}

// NewTask builds a task in its initial state. Identity comes from the
// repository; construction never assigns an ID.
func NewTask(in CreateTaskInput) Task {
	priority := in.Priority
	if !priority.Valid() {
		priority = TaskPriorityMedium
	}

	return Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      TaskStatusPending,
		Priority:    priority,
		CreatedDate: time.Now(),
		DueDate:     in.DueDate,
	}
}

// MarkCompleted stamps CompletedDate with the transition time. Calling it
// again overwrites the previous stamp.
func (t *Task) MarkCompleted() {
	now := time.Now()
	t.Status = TaskStatusCompleted
	t.CompletedDate = &now
}

// IsOverdue reports whether the due date has passed and the task is not
// completed. Cancelled tasks past their due date still count as overdue;
// product has not confirmed whether that is intended.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(time.Now()) && t.Status != TaskStatusCompleted
}

const dueDateLayout = "2006-01-02"

// Render produces the one-line summary shown in task listings.
func (t *Task) Render() string {
	due := "No due date"
	if t.DueDate != nil {
		due = t.DueDate.Format(dueDateLayout)
	}

	line := fmt.Sprintf("[%d] %s - %s (%s) - Due: %s", t.ID, t.Title, t.Status, t.Priority, due)
	if t.IsOverdue() {
		line += " [OVERDUE]"
	}
	return line
}
