package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskflow-api/internal/application"
	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
	"github.com/oksasatya/taskflow-api/pkg/response"
	"github.com/oksasatya/taskflow-api/pkg/validation"
)

type UserHandler struct {
	Svc        *application.UserService
	Logger     *logrus.Logger
	Production bool
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, production bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Production: production}
}

var createUserSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "name", Required: true, Trim: true, NonEmpty: true},
		{Name: "email", Required: true, Trim: true, NonEmpty: true, Email: true},
		{Name: "role", Enum: entity.UserRoleValues()},
	},
}

func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.List())
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		response.AppError(c, err, h.Production)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	body, ok := bindObject(c, h.Production)
	if !ok {
		return
	}
	values, errs := createUserSchema.Evaluate(body)
	if len(errs) > 0 {
		response.AppError(c, apperrors.Validation(errs.Join()), h.Production)
		return
	}

	in := repository.NewUser{
		Name:  values["name"],
		Email: values["email"],
	}
	if r, ok := values["role"]; ok {
		role, _ := entity.ParseUserRole(r)
		in.Role = role
	}
	user, err := h.Svc.Create(in)
	if err != nil {
		response.AppError(c, err, h.Production)
		return
	}
	c.JSON(http.StatusCreated, user)
}
