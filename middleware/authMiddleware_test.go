package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack-backend/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", Authentication(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No authorization token provided")
}

func TestAuthenticationInvalidToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", Authentication(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationValidToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, _, err := helpers.GenerateAllTokens("jane@example.com", "Jane", "user-42")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	var gotUID, gotEmail string
	router.GET("/private", Authentication(), func(c *gin.Context) {
		gotUID = c.GetString("uid")
		gotEmail = c.GetString("email")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", gotUID)
	assert.Equal(t, "jane@example.com", gotEmail)
}

func TestAuthenticationWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "signing-secret")
	token, _, err := helpers.GenerateAllTokens("jane@example.com", "Jane", "user-42")
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "different-secret")
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", Authentication(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
