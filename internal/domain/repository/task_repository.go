package repository

import "github.com/oksasatya/taskflow-api/internal/domain/entity"

// NewTask is the validated input for task creation. A zero Status means
// the repository applies the default.
type NewTask struct {
	Title       string
	Description string
	Assignee    string
	Status      entity.TaskStatus
}

// TaskPatch is a partial update; nil fields are left untouched
type TaskPatch struct {
	Title       *string
	Description *string
	Assignee    *string
	Status      *entity.TaskStatus
}

// TaskQuery combines the list filters with pagination parameters.
// Status and Search are matched case-insensitively; a blank Search means
// no filtering.
type TaskQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// TaskRepository owns the task collection and its identity and timestamp
// invariants. Implementations must serialize mutations and give readers a
// consistent snapshot.
type TaskRepository interface {
	Create(in NewTask) entity.Task
	GetByID(id string) (entity.Task, error)
	Update(id string, patch TaskPatch) (entity.Task, error)
	Delete(id string) bool
	List() []entity.Task
	Reset()
}
