package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.authed(t, http.MethodPost, "/api/users", map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, "member", body["role"], "role defaults to member")
}

func TestCreateUser_ExplicitRole(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.authed(t, http.MethodPost, "/api/users", map[string]any{
		"name":  "Root",
		"email": "root@example.com",
		"role":  "Admin",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin", decode(t, w)["role"])
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.authed(t, http.MethodPost, "/api/users", map[string]any{
		"name": "A", "email": "dup@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.authed(t, http.MethodPost, "/api/users", map[string]any{
		"name": "B", "email": "DUP@example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code, "email identity ignores case")
	assert.Equal(t, "User with this email already exists", decode(t, w)["error"])
	assert.Len(t, api.userRepo.List(), 1, "the conflicting create applies nothing")
}

func TestCreateUser_Validation(t *testing.T) {
	api := newTestAPI(t, false)

	tests := []struct {
		name    string
		payload map[string]any
		details string
	}{
		{"missing everything", map[string]any{}, "name: is required, email: is required"},
		{"bad email", map[string]any{"name": "A", "email": "not-an-email"}, "email: must be a valid email"},
		{"bad role", map[string]any{"name": "A", "email": "a@b.co", "role": "owner"}, "role: must be one of: admin, member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.authed(t, http.MethodPost, "/api/users", tt.payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, "Validation failed", body["error"])
			assert.Equal(t, tt.details, body["details"])
		})
	}
}

func TestGetUser(t *testing.T) {
	api := newTestAPI(t, false)
	created := decode(t, api.authed(t, http.MethodPost, "/api/users", map[string]any{
		"name": "Find Me", "email": "findme@example.com",
	}))

	w := api.authed(t, http.MethodGet, "/api/users/"+created["id"].(string), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Find Me", decode(t, w)["name"])
}

func TestGetUser_Missing(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.authed(t, http.MethodGet, "/api/users/nope", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])
}

func TestListUsers(t *testing.T) {
	api := newTestAPI(t, false)
	api.authed(t, http.MethodPost, "/api/users", map[string]any{"name": "A", "email": "a@example.com"})
	api.authed(t, http.MethodPost, "/api/users", map[string]any{"name": "B", "email": "b@example.com"})

	w := api.authed(t, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var list []any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].(map[string]any)["name"], "insertion order is preserved")
}

func TestUsers_AuthRequired(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(t, http.MethodGet, "/api/users", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["error"])
}
