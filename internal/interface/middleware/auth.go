package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/pkg/response"
)

const bearerScheme = "Bearer"

// Auth gates every resource route behind static bearer-token membership.
// The credential must be exactly `Bearer <token>` (any whitespace run
// separates the two fields) with the token in the allow-set. Every
// failure mode — missing header, wrong scheme, empty token, unknown
// token — yields the same 401 so the cause is not observable.
func Auth(tokens []string) gin.HandlerFunc {
	allow := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		allow[t] = struct{}{}
	}

	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || parts[0] != bearerScheme {
			response.AbortUnauthorized(c)
			return
		}
		if _, ok := allow[parts[1]]; !ok {
			response.AbortUnauthorized(c)
			return
		}
		c.Next()
	}
}
