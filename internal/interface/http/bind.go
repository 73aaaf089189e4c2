package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/pkg/response"
)

// bindObject decodes the request body into a generic JSON object for
// schema evaluation. Malformed JSON and non-object bodies are rejected as
// validation failures before any rule runs.
func bindObject(c *gin.Context, production bool) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AppError(c, apperrors.Validation("body: must be a JSON object"), production)
		return nil, false
	}
	return body, true
}
