package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/utils"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	user := models.User{UserID: primitive.NewObjectID(), Email: "viewer@example.com"}
	auth := &mockAuthService{
		authenticate: func(_ context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, "signed-token", tokenString)
			return user, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var ctxUser *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxUser, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, ctxUser)
	assert.Equal(t, user.UserID, ctxUser.UserID)
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	auth := &mockAuthService{
		authenticate: func(_ context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, "cookie-token", tokenString)
			return models.User{UserID: primitive.NewObjectID()}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()
	h.auth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(r *http.Request)
		authErr     error
		wantMessage string
	}{
		{
			name:        "no token at all",
			setup:       func(*http.Request) {},
			wantMessage: ErrNoToken.Error(),
		},
		{
			name: "header without token part",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer")
			},
			wantMessage: ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name: "header with empty token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer ")
			},
			wantMessage: ErrEmptyToken.Error(),
		},
		{
			name: "expired token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer stale")
			},
			authErr:     service.ErrTokenExpired,
			wantMessage: service.ErrTokenExpired.Error(),
		},
		{
			name: "tampered token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer garbage")
			},
			authErr:     service.ErrInvalidToken,
			wantMessage: service.ErrInvalidToken.Error(),
		},
		{
			name: "deleted account",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer orphan")
			},
			authErr:     service.ErrAccountNotFound,
			wantMessage: service.ErrAccountNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticate: func(context.Context, string) (models.User, error) {
					return models.User{}, tt.authErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				nextCalled = true
			})).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}
