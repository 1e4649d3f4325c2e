package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-backend/models"
	"hostel-backend/utils"
)

const testSecret = "test-secret"

func newGateRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	authed := r.Group("/api")
	authed.Use(RequireAuth(db, testSecret))
	authed.GET("/dashboard", func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})

	admin := authed.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, db
}

func seedGateUser(t *testing.T, db *gorm.DB, username string, admin bool) (models.User, string) {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "x", Admin: admin}
	require.NoError(t, db.Create(&user).Error)
	token, err := utils.NewAccessToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	return user, token
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r, db := newGateRouter(t)
	_, token := seedGateUser(t, db, "alice", false)

	t.Run("missing token redirects to login", func(t *testing.T) {
		w := doGet(r, "/api/dashboard", "")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, LoginRoute, w.Header().Get("Location"))
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		w := doGet(r, "/api/dashboard", "not-a-jwt")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, LoginRoute, w.Header().Get("Location"))
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other, err := utils.NewAccessToken("other-secret", models.User{ID: 1}, time.Hour)
		require.NoError(t, err)
		w := doGet(r, "/api/dashboard", other)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("token for a deleted user is rejected", func(t *testing.T) {
		ghost, ghostToken := seedGateUser(t, db, "ghost", false)
		require.NoError(t, db.Delete(&models.User{}, ghost.ID).Error)
		w := doGet(r, "/api/dashboard", ghostToken)
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("valid token passes and resolves the user", func(t *testing.T) {
		w := doGet(r, "/api/dashboard", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})
}

func TestRequireAdmin(t *testing.T) {
	r, db := newGateRouter(t)
	_, userToken := seedGateUser(t, db, "bob", false)
	_, adminToken := seedGateUser(t, db, "warden", true)

	t.Run("non-admin is sent to the resident dashboard", func(t *testing.T) {
		w := doGet(r, "/api/admin/dashboard", userToken)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, DashboardRoute, w.Header().Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		w := doGet(r, "/api/admin/dashboard", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
