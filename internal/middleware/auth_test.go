package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"richcase_backend/internal/model"
	"richcase_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJWTConfig struct {
	secret []byte
}

func (c *fakeJWTConfig) AccessTokenSecretKey() []byte       { return c.secret }
func (c *fakeJWTConfig) AccessTokenDuration() time.Duration { return time.Minute }
func (c *fakeJWTConfig) RefreshTokenDuration() time.Duration {
	return 24 * time.Hour
}

func TestAuth_ValidToken(t *testing.T) {
	jwtCfg := &fakeJWTConfig{secret: []byte("test-secret")}

	accessToken, err := token.GenerateAccessToken(&model.User{ID: 7}, jwtCfg.secret, time.Minute)
	require.NoError(t, err)

	var gotID int
	var gotOK bool
	handler := Auth(jwtCfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, 7, gotID)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(&fakeJWTConfig{secret: []byte("test-secret")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(&fakeJWTConfig{secret: []byte("test-secret")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserIDFromContext_Empty(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}
