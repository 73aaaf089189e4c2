package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskflow-api/internal/application"
	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
	"github.com/oksasatya/taskflow-api/pkg/paginate"
	"github.com/oksasatya/taskflow-api/pkg/response"
	"github.com/oksasatya/taskflow-api/pkg/validation"
)

type TaskHandler struct {
	Svc        *application.TaskService
	Logger     *logrus.Logger
	Production bool
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger, production bool) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger, Production: production}
}

var createTaskSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "title", Required: true, Trim: true, NonEmpty: true},
		{Name: "description"},
		{Name: "status", Enum: entity.TaskStatusValues()},
		{Name: "assignee", Trim: true},
	},
}

var updateTaskSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "title", Trim: true, NonEmpty: true},
		{Name: "description"},
		{Name: "status", Enum: entity.TaskStatusValues()},
		{Name: "assignee", Trim: true},
	},
	AtLeastOne: []string{"title", "description", "status", "assignee"},
}

var taskStatusSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "status", Required: true, Enum: entity.TaskStatusValues()},
	},
}

// List handles GET /tasks with optional status/search filters and
// pagination. Unparseable page or limit values are rejected; a well-formed
// page past the end yields an empty data array.
func (h *TaskHandler) List(c *gin.Context) {
	var errs validation.Errors
	page, ferr := validation.PositiveInt("page", c.Query("page"), paginate.DefaultPage)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	limit, ferr := validation.PositiveInt("limit", c.Query("limit"), paginate.DefaultLimit)
	if ferr != nil {
		errs = append(errs, *ferr)
	}
	if len(errs) > 0 {
		response.AppError(c, apperrors.Validation(errs.Join()), h.Production)
		return
	}

	tasks, meta := h.Svc.Query(repository.TaskQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	c.JSON(http.StatusOK, gin.H{"data": tasks, "pagination": meta})
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.AppError(c, err, h.Production)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	body, ok := bindObject(c, h.Production)
	if !ok {
		return
	}
	values, errs := createTaskSchema.Evaluate(body)
	if len(errs) > 0 {
		response.AppError(c, apperrors.Validation(errs.Join()), h.Production)
		return
	}

	in := repository.NewTask{
		Title:       values["title"],
		Description: values["description"],
		Assignee:    values["assignee"],
	}
	if s, ok := values["status"]; ok {
		st, _ := entity.ParseTaskStatus(s)
		in.Status = st
	}
	task := h.Svc.Create(in)
	c.JSON(http.StatusCreated, task)
}

// Update handles PUT /tasks/:id as a merge: only supplied fields change,
// and at least one updatable field must be present.
func (h *TaskHandler) Update(c *gin.Context) {
	body, ok := bindObject(c, h.Production)
	if !ok {
		return
	}
	values, errs := updateTaskSchema.Evaluate(body)
	if len(errs) > 0 {
		response.AppError(c, apperrors.Validation(errs.Join()), h.Production)
		return
	}

	task, err := h.Svc.Update(c.Param("id"), patchFromValues(values))
	if err != nil {
		response.AppError(c, err, h.Production)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateStatus handles PATCH /tasks/:id/status, the status-only update
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	body, ok := bindObject(c, h.Production)
	if !ok {
		return
	}
	values, errs := taskStatusSchema.Evaluate(body)
	if len(errs) > 0 {
		response.AppError(c, apperrors.Validation(errs.Join()), h.Production)
		return
	}

	status, _ := entity.ParseTaskStatus(values["status"])
	task, err := h.Svc.Update(c.Param("id"), repository.TaskPatch{Status: &status})
	if err != nil {
		response.AppError(c, err, h.Production)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if !h.Svc.Delete(c.Param("id")) {
		response.AppError(c, apperrors.NotFound("Task"), h.Production)
		return
	}
	c.Status(http.StatusNoContent)
}

func patchFromValues(values map[string]string) repository.TaskPatch {
	var patch repository.TaskPatch
	if v, ok := values["title"]; ok {
		patch.Title = &v
	}
	if v, ok := values["description"]; ok {
		patch.Description = &v
	}
	if v, ok := values["assignee"]; ok {
		patch.Assignee = &v
	}
	if v, ok := values["status"]; ok {
		st, _ := entity.ParseTaskStatus(v)
		patch.Status = &st
	}
	return patch
}
