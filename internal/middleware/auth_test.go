package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planhub/internal/model"
	"planhub/internal/service"
	"planhub/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	byUsername map[string]*model.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.byUsername[username], nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, nil
}

func newProtectedRouter(t *testing.T, repo *stubUserRepo) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	users := service.NewUserService(repo, tokens)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r, tokens
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	repo := &stubUserRepo{byUsername: map[string]*model.User{
		"alice": {Username: "alice", Email: "alice@example.com", IsActive: true},
	}}
	router, tokens := newProtectedRouter(t, repo)

	token, err := tokens.Generate("alice", "alice@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router, _ := newProtectedRouter(t, &stubUserRepo{byUsername: map[string]*model.User{}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router, _ := newProtectedRouter(t, &stubUserRepo{byUsername: map[string]*model.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInactiveUser(t *testing.T) {
	repo := &stubUserRepo{byUsername: map[string]*model.User{
		"bob": {Username: "bob", IsActive: false},
	}}
	router, tokens := newProtectedRouter(t, repo)

	token, err := tokens.Generate("bob", "bob@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
