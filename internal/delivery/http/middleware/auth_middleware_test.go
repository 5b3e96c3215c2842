package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"keyhub/config"
	"keyhub/internal/domain/entity"
	"keyhub/internal/domain/repository"
	"keyhub/internal/domain/service"
	"keyhub/internal/infra/auth"
	mockRepo "keyhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (service.TokenService, *AuthMiddleware, *mockRepo.MockUserRepository) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)

	return tokenSvc, NewAuthMiddleware(tokenSvc, userRepo), userRepo
}

func performRequest(m *AuthMiddleware, authHeader string, requiredRole *entity.Role) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	handler := func(c echo.Context) error {
		handlerCalled = true

		return c.NoContent(http.StatusOK)
	}

	chain := m.Authenticate(handler)
	if requiredRole != nil {
		chain = m.Authenticate(m.RequireRole(*requiredRole)(handler))
	}

	_ = chain(c)

	return rec, handlerCalled
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	_, m, _ := newTestTokenService(t)

	rec, called := performRequest(m, "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	_, m, _ := newTestTokenService(t)

	rec, called := performRequest(m, "Token abc", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, m, _ := newTestTokenService(t)

	rec, called := performRequest(m, "Bearer not-a-token", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	tokenSvc, m, userRepo := newTestTokenService(t)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID, entity.RoleCustomer)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	rec, called := performRequest(m, "Bearer "+accessToken, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc, m, userRepo := newTestTokenService(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	accessToken, _, err := tokenSvc.GenerateTokens(user.ID, user.Role)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	rec, called := performRequest(m, "Bearer "+accessToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc, m, userRepo := newTestTokenService(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	accessToken, _, err := tokenSvc.GenerateTokens(user.ID, user.Role)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	developer := entity.RoleDeveloper
	rec, called := performRequest(m, "Bearer "+accessToken, &developer)

	// A customer calling a developer route gets the same bare 401 as an
	// unauthenticated caller.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	tokenSvc, m, userRepo := newTestTokenService(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleDeveloper}
	accessToken, _, err := tokenSvc.GenerateTokens(user.ID, user.Role)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	developer := entity.RoleDeveloper
	rec, called := performRequest(m, "Bearer "+accessToken, &developer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
