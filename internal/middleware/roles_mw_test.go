package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"task_manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(role string, withRole bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin",
		func(c *gin.Context) {
			if withRole {
				c.Set(AuthRoleKey, role)
			}
			c.Next()
		},
		AdminMiddleware(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	router := roleTestRouter(model.RoleAdmin, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_RejectsUser(t *testing.T) {
	router := roleTestRouter(model.RoleUser, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_RejectsMissingRole(t *testing.T) {
	router := roleTestRouter("", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
