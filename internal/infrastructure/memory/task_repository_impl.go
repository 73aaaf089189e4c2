package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
)

// TaskRepository is the in-memory implementation of repository.TaskRepository.
// The backing slice preserves insertion order, which the query engine relies
// on for stable pagination.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []entity.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func (r *TaskRepository) Create(in repository.NewTask) entity.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := in.Status
	if status == "" {
		status = entity.StatusTodo
	}
	now := time.Now().UTC()
	t := entity.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Assignee:    in.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks = append(r.tasks, t)
	return t
}

func (r *TaskRepository) GetByID(id string) (entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return entity.Task{}, apperrors.NotFound("Task")
}

func (r *TaskRepository) Update(id string, patch repository.TaskPatch) (entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entity.Task{}, apperrors.NotFound("Task")
	}

	t := r.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}

	// UpdatedAt must be strictly greater than the previous stamp even when
	// successive updates land within the clock resolution.
	now := time.Now().UTC()
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now

	r.tasks[idx] = t
	return t, nil
}

func (r *TaskRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot copy of the collection in insertion order
func (r *TaskRepository) List() []entity.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Reset clears the collection. Test harness use only.
func (r *TaskRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = nil
}
