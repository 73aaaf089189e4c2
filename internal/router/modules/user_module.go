package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/internal/container"
	handlers "github.com/oksasatya/taskflow-api/internal/interface/http"
	"github.com/oksasatya/taskflow-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes under /users
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.Use(middleware.RateLimit(container.GetLimiter(), middleware.KeyByIP()))
	{
		g.GET("", m.Handler.List)
		g.GET("/:id", m.Handler.Get)
		g.POST("", m.Handler.Create)
	}
}
