package entity

import (
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// TaskStatusValues lists the canonical status strings in declaration order
func TaskStatusValues() []string {
	return []string{string(StatusTodo), string(StatusInProgress), string(StatusDone)}
}

// ParseTaskStatus matches a status string case-insensitively and returns
// the canonical value.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(strings.ToLower(s)) {
	case StatusTodo:
		return StatusTodo, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusDone:
		return StatusDone, true
	}
	return "", false
}

// Task is the aggregate root for the task domain.
// ID and CreatedAt are assigned once by the repository and never change;
// UpdatedAt strictly increases on every successful mutation.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Assignee    string     `json:"assignee,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
