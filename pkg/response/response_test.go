package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
)

func render(t *testing.T, err error, production bool) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AppError(c, err, production)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAppError_KindToStatus(t *testing.T) {
	tests := []struct {
		kind   apperrors.Kind
		status int
	}{
		{apperrors.KindUnauthorized, http.StatusUnauthorized},
		{apperrors.KindValidation, http.StatusBadRequest},
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindDuplicate, http.StatusConflict},
		{apperrors.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, body := render(t, apperrors.New(tt.kind, "boom"), false)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, "boom", body["error"])
	}
}

func TestAppError_ValidationDetails(t *testing.T) {
	status, body := render(t, apperrors.Validation("title: is required"), true)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, "title: is required", body["details"],
		"validation details are exposed in every mode")
}

func TestAppError_InternalDiagnostics(t *testing.T) {
	internal := apperrors.New(apperrors.KindInternal, "nil pointer dereference").
		WithDetails("goroutine 1 [running]: ...")

	t.Run("non-production exposes diagnostics", func(t *testing.T) {
		status, body := render(t, internal, false)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "nil pointer dereference", body["error"])
		assert.NotEmpty(t, body["details"])
	})

	t.Run("production replaces message and strips details", func(t *testing.T) {
		status, body := render(t, internal, true)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal Server Error", body["error"])
		_, present := body["details"]
		assert.False(t, present, "5xx responses must not leak diagnostics in production")
	})
}

func TestAppError_UnclassifiedErrorBecomesInternal(t *testing.T) {
	status, body := render(t, errors.New("database exploded"), true)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body["error"])
}
