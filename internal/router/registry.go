package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them on the engine.
// Modules added with Add register under the guarded /api group; modules
// added with AddPublic register at the engine root, outside the auth gate.
type Registry struct {
	Engine        *gin.Engine
	Root          *gin.RouterGroup
	API           *gin.RouterGroup
	middlewares   []gin.HandlerFunc
	modules       []Module
	publicModules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		Root:   engine.Group("/"),
		API:    engine.Group("/api"),
	}
}

// Use appends middleware applied to the /api group only
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) AddPublic(mod Module) {
	r.publicModules = append(r.publicModules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.publicModules {
		m.Register(r.Root)
	}
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
