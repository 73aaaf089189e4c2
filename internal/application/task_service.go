package application

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
	"github.com/oksasatya/taskflow-api/pkg/paginate"
)

// TaskService orchestrates task CRUD and owns the query engine that
// computes filtered, paginated result sets from a repository snapshot.
type TaskService struct {
	Repo   repository.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(repo repository.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: repo, Logger: logger}
}

func (s *TaskService) Create(in repository.NewTask) entity.Task {
	t := s.Repo.Create(in)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "status": t.Status}).Debug("task created")
	}
	return t
}

func (s *TaskService) Get(id string) (entity.Task, error) {
	return s.Repo.GetByID(id)
}

func (s *TaskService) Update(id string, patch repository.TaskPatch) (entity.Task, error) {
	return s.Repo.Update(id, patch)
}

// Delete removes a task; a miss is reported through the repository's
// boolean result and surfaced here as a classified lookup failure.
func (s *TaskService) Delete(id string) bool {
	deleted := s.Repo.Delete(id)
	if deleted && s.Logger != nil {
		s.Logger.WithField("task_id", id).Debug("task deleted")
	}
	return deleted
}

// Query filters a collection snapshot by status then title search, both
// case-insensitive, and slices out the requested page. Insertion order is
// preserved through both filters.
func (s *TaskService) Query(q repository.TaskQuery) ([]entity.Task, paginate.Meta) {
	filtered := filterTasks(s.Repo.List(), q.Status, q.Search)
	return paginate.Page(filtered, paginate.Params{Page: q.Page, Limit: q.Limit})
}

// filterTasks applies the status filter first, then the title substring
// search. A blank or all-whitespace filter value means no filtering.
func filterTasks(tasks []entity.Task, status, search string) []entity.Task {
	out := tasks

	if st := strings.ToLower(strings.TrimSpace(status)); st != "" {
		kept := make([]entity.Task, 0, len(out))
		for _, t := range out {
			if strings.ToLower(string(t.Status)) == st {
				kept = append(kept, t)
			}
		}
		out = kept
	}

	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		kept := make([]entity.Task, 0, len(out))
		for _, t := range out {
			if strings.Contains(strings.ToLower(t.Title), needle) {
				kept = append(kept, t)
			}
		}
		out = kept
	}

	return out
}
