package router

import (
	"github.com/oksasatya/taskflow-api/internal/application"
	"github.com/oksasatya/taskflow-api/internal/container"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
	"github.com/oksasatya/taskflow-api/internal/infrastructure/memory"
	handlers "github.com/oksasatya/taskflow-api/internal/interface/http"
	"github.com/oksasatya/taskflow-api/internal/router/modules"
)

type TaskModuleDeps struct {
	Repo    repository.TaskRepository
	Service *application.TaskService
	Handler *handlers.TaskHandler
}

type UserModuleDeps struct {
	Repo    repository.UserRepository
	Service *application.UserService
	Handler *handlers.UserHandler
}

func buildTaskDeps() TaskModuleDeps {
	repo := memory.NewTaskRepository()
	service := application.NewTaskService(repo, container.GetLogger())
	handler := handlers.NewTaskHandler(
		service,
		container.GetLogger(),
		container.GetConfig().IsProduction(),
	)
	return TaskModuleDeps{Repo: repo, Service: service, Handler: handler}
}

func buildUserDeps() UserModuleDeps {
	repo := memory.NewUserRepository()
	service := application.NewUserService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(
		service,
		container.GetLogger(),
		container.GetConfig().IsProduction(),
	)
	return UserModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with
// the router registry. Each repository is constructed here and injected
// down its own module's stack; nothing else holds a reference to it.
func InitModules(r *Registry) {
	taskDeps := buildTaskDeps()
	userDeps := buildUserDeps()

	r.Add(modules.NewTaskModule(taskDeps.Handler))
	r.Add(modules.NewUserModule(userDeps.Handler))
	r.AddPublic(modules.NewHealthModule(handlers.NewHealthHandler(container.GetConfig().Env)))
}
