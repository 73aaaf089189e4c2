package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestTaskCreate_Defaults(t *testing.T) {
	repo := NewTaskRepository()

	task := repo.Create(repository.NewTask{Title: "Write report"})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, entity.StatusTodo, task.Status, "status defaults to todo")
	assert.Equal(t, "", task.Description)
	assert.False(t, task.CreatedAt.IsZero())
	assert.True(t, task.CreatedAt.Equal(task.UpdatedAt), "created_at equals updated_at at creation")
}

func TestTaskCreate_UniqueIDs(t *testing.T) {
	repo := NewTaskRepository()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := repo.Create(repository.NewTask{Title: "t"})
		assert.False(t, seen[task.ID], "id %s assigned twice", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskUpdate_MergesOnlySuppliedFields(t *testing.T) {
	repo := NewTaskRepository()
	created := repo.Create(repository.NewTask{Title: "Original", Description: "desc", Assignee: "alice"})

	updated, err := repo.Update(created.ID, repository.TaskPatch{Title: strPtr("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, "alice", updated.Assignee)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "created_at never changes")
}

func TestTaskUpdate_MonotonicUpdatedAt(t *testing.T) {
	repo := NewTaskRepository()
	task := repo.Create(repository.NewTask{Title: "t"})

	prev := task.UpdatedAt
	for i := 0; i < 50; i++ {
		updated, err := repo.Update(task.ID, repository.TaskPatch{Title: strPtr("t")})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(prev),
			"updated_at must strictly increase even under rapid successive updates")
		prev = updated.UpdatedAt
	}
}

func TestTaskUpdate_Missing(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.Update("nope", repository.TaskPatch{Title: strPtr("x")})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTaskDelete(t *testing.T) {
	repo := NewTaskRepository()
	task := repo.Create(repository.NewTask{Title: "doomed"})

	assert.True(t, repo.Delete(task.ID))

	_, err := repo.GetByID(task.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound),
		"delete followed by lookup yields not found")

	assert.False(t, repo.Delete(task.ID), "deleting an absent id is a boolean result, not a failure")
}

func TestTaskList_InsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	for _, title := range []string{"first", "second", "third"} {
		repo.Create(repository.NewTask{Title: title})
	}
	repo.Create(repository.NewTask{Title: "fourth"})
	tasks := repo.List()

	require.Len(t, tasks, 4)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
	assert.Equal(t, "fourth", tasks[3].Title)
}

func TestTaskList_SnapshotIsolation(t *testing.T) {
	repo := NewTaskRepository()
	repo.Create(repository.NewTask{Title: "keep"})

	snapshot := repo.List()
	snapshot[0].Title = "mutated"

	fresh := repo.List()
	assert.Equal(t, "keep", fresh[0].Title, "callers get a copy, not the backing slice")
}

func TestTaskCreate_ConcurrentIDsUnique(t *testing.T) {
	repo := NewTaskRepository()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			repo.Create(repository.NewTask{Title: "t"})
		}()
	}
	wg.Wait()

	tasks := repo.List()
	require.Len(t, tasks, workers)
	seen := make(map[string]bool, workers)
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "id %s assigned twice under concurrent creation", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskConcurrentReadsAndWrites(t *testing.T) {
	repo := NewTaskRepository()
	task := repo.Create(repository.NewTask{Title: "shared"})

	// Readers must always observe a fully written record while writers
	// mutate it.
	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Update(task.ID, repository.TaskPatch{Title: strPtr("renamed")})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			got, err := repo.GetByID(task.ID)
			if assert.NoError(t, err) {
				assert.Contains(t, []string{"shared", "renamed"}, got.Title)
				assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(task.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(task.UpdatedAt))
}

func TestTaskReset(t *testing.T) {
	repo := NewTaskRepository()
	repo.Create(repository.NewTask{Title: "a"})
	repo.Create(repository.NewTask{Title: "b"})

	repo.Reset()
	assert.Empty(t, repo.List())
}
