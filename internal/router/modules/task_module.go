package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/internal/container"
	handlers "github.com/oksasatya/taskflow-api/internal/interface/http"
	"github.com/oksasatya/taskflow-api/internal/interface/middleware"
)

// TaskModule wires task HTTP handlers into routes under /tasks.
// All routes sit behind the bearer auth gate applied to the parent group.
type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/tasks")
	g.Use(middleware.RateLimit(container.GetLimiter(), middleware.KeyByIP()))
	{
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.POST("", m.Handler.Create)
		g.PUT("/:id", m.Handler.Update)
		g.PATCH("/:id/status", m.Handler.UpdateStatus)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
