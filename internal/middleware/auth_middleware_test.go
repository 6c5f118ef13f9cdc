package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models"
	"github.com/okan/courseatlas/internal/pkg/auth"
)

func setupAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "courseatlas.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.POST("/admin",
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(string(models.RoleAdmin)),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)

	return router, jwtService
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	router, _ := setupAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	router, _ := setupAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidAdminToken(t *testing.T) {
	t.Parallel()

	router, jwtService := setupAuthTestRouter(t)

	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       1,
		Email:    "admin@courseatlas.app",
		RoleType: models.RoleAdmin,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired_WrongRole(t *testing.T) {
	t.Parallel()

	router, jwtService := setupAuthTestRouter(t)

	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       2,
		Email:    "someone@courseatlas.app",
		RoleType: models.RoleType("STUDENT"),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
