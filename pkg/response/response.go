// Package response is the single boundary that turns classified
// application errors into wire responses. No other component writes an
// error body.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
)

// ErrorBody is the uniform error payload
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

const genericServerError = "Internal Server Error"

// AppError normalizes err into the taxonomy and renders it. In production
// mode responses with status >= 500 carry a generic message and no
// details, so internal diagnostics never reach the caller.
func AppError(c *gin.Context, err error, production bool) {
	ae := apperrors.From(err)
	status := ae.Kind.Status()

	body := ErrorBody{Error: ae.Message, Details: ae.Details}
	if status >= http.StatusInternalServerError && production {
		body.Error = genericServerError
		body.Details = ""
	}
	c.JSON(status, body)
}

// AbortUnauthorized rejects the request with the uniform 401 body. The
// message is identical for every auth failure mode so callers cannot
// probe why a credential was rejected.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{Error: "Invalid token"})
}

// AbortTooManyRequests rejects a rate-limited request
func AbortTooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorBody{Error: "Too many requests"})
}
