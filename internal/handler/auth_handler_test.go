package handler

import (
	"net/http"
	"testing"

	"task_manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, model.RoleUser, user["role"])
	assert.NotContains(t, w.Body.String(), "password")

	// The token works against the protected surface
	token := body["token"].(string)
	probe := env.do(http.MethodGet, "/api/tasks", token, nil)
	assert.Equal(t, http.StatusOK, probe.Code)
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	env := newTestEnv()

	payload := gin.H{"email": "alice@example.com", "password": "password123"}

	first := env.do(http.MethodPost, "/api/auth/signup", "", payload)
	require.Equal(t, http.StatusOK, first.Code)

	second := env.do(http.MethodPost, "/api/auth/signup", "", payload)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "Email taken")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/auth/signup", "", gin.H{"email": "alice@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/auth/signup", "", gin.H{"password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Signup_InvalidRole(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
		"role":     "superuser",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Signin(t *testing.T) {
	env := newTestEnv()

	signup := env.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, signup.Code)

	w := env.do(http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", user["email"])
}

func TestAuthHandler_Signin_BadCredentials(t *testing.T) {
	env := newTestEnv()

	signup := env.do(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, signup.Code)

	w := env.do(http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = env.do(http.MethodPost, "/api/auth/signin", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
