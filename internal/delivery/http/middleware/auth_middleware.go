package middleware

import (
	"context"
	"net/http"
	"strings"

	"dentist-dashboard/internal/domain/entity"
	"dentist-dashboard/internal/usecase"
	"dentist-dashboard/pkg/jwt"
	"dentist-dashboard/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore usecase.TokenStore
	loginURL   string
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore usecase.TokenStore, loginURL string, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		loginURL:   loginURL,
		log:        log,
	}
}

// Authenticate resolves the caller from a bearer access token. Requests
// without a live token are sent back to the login entry point.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Redirect(w, http.StatusUnauthorized, "Authorization header is required", m.loginURL)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Redirect(w, http.StatusUnauthorized, "Invalid authorization header format", m.loginURL)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Redirect(w, http.StatusUnauthorized, "Invalid or expired token", m.loginURL)
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Redirect(w, http.StatusUnauthorized, "Invalid token type", m.loginURL)
			return
		}

		// Check if token exists in Redis (not revoked)
		exists, err := m.tokenStore.Exists(r.Context(), usecase.AccessTokenKey(claims.UserID, claims.TokenID)).Result()
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.ServiceUnavailable(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Redirect(w, http.StatusUnauthorized, "Token has been revoked", m.loginURL)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// CallerFromContext returns the authenticated caller set by Authenticate.
func CallerFromContext(ctx context.Context) (entity.Caller, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return entity.Caller{}, false
	}
	email, _ := ctx.Value(UserEmailKey).(string)
	return entity.Caller{ID: userID, Email: email}, true
}

// WithCaller stores a caller on ctx the way Authenticate does.
func WithCaller(ctx context.Context, caller entity.Caller, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, caller.ID)
	ctx = context.WithValue(ctx, UserEmailKey, caller.Email)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}
