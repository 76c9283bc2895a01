package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oporajita/reformtrack/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func protectedRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenUserID string
	router := gin.New()
	router.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		seenUserID = c.GetString("userID")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &seenUserID
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized, no token")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _ := protectedRouter(t)

	for _, header := range []string{"sometoken", "Basic abc123", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _ := protectedRouter(t)

	otherToken, err := helpers.GenerateToken("64f1a2b3c4d5e6f708192a3b", "some-other-secret")
	require.NoError(t, err)

	for _, token := range []string{"not-a-jwt", otherToken} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized, token failed")
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	router, seenUserID := protectedRouter(t)

	token, err := helpers.GenerateToken("64f1a2b3c4d5e6f708192a3b", testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "64f1a2b3c4d5e6f708192a3b", *seenUserID)
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoedWhenProvided(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-abc-123", w.Header().Get("X-Request-ID"))
}
