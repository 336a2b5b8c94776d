package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentist-dashboard/config"
	"dentist-dashboard/internal/usecase"
	"dentist-dashboard/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenStore struct {
	live map[string]bool
}

func (s *fakeTokenStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	s.live[key] = true
	return redis.NewStatusResult("OK", nil)
}

func (s *fakeTokenStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if s.live[k] {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *fakeTokenStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(s.live, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func newTestMiddleware() (*AuthMiddleware, *jwt.JWTService, *fakeTokenStore) {
	log, _ := test.NewNullLogger()
	svc := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	store := &fakeTokenStore{live: map[string]bool{}}
	return NewAuthMiddleware(svc, store, "/login", log), svc, store
}

func callerEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(caller.ID.String()))
	})
}

func TestAuthenticate_RejectsMissingOrMalformedHeader(t *testing.T) {
	m, _, _ := newTestMiddleware()

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		m.Authenticate(callerEcho(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)

		var body struct {
			Error struct {
				RedirectTo string `json:"redirect_to"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "/login", body.Error.RedirectTo)
	}
}

func TestAuthenticate_AcceptsLiveAccessToken(t *testing.T) {
	m, svc, store := newTestMiddleware()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "dr@clinic.test")
	require.NoError(t, err)
	store.live[usecase.AccessTokenKey(userID, tokenID)] = true

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(callerEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthenticate_RejectsRevokedAndRefreshTokens(t *testing.T) {
	m, svc, _ := newTestMiddleware()
	userID := uuid.New()

	revoked, _, err := svc.GenerateAccessToken(userID, "dr@clinic.test")
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(userID, "dr@clinic.test")
	require.NoError(t, err)

	for _, token := range []string{revoked, refresh} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(callerEcho(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
