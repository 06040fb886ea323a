package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-reel-keeper/internal/config"
	"github.com/MKhiriev/go-reel-keeper/internal/logger"
	"github.com/MKhiriev/go-reel-keeper/internal/service"
	"github.com/MKhiriev/go-reel-keeper/internal/store"
	"github.com/MKhiriev/go-reel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockAuthService implements service.AuthService with overridable
// behaviour per test case.
type mockAuthService struct {
	registerUser         func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	login                func(ctx context.Context, email, password string) (models.User, models.Token, error)
	authenticate         func(ctx context.Context, tokenString string) (models.User, error)
	requestPasswordReset func(ctx context.Context, email string) error
	resetPassword        func(ctx context.Context, token, newPassword string) error
	deleteAccount        func(ctx context.Context, email, password string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerUser(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.login(ctx, email, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticate(ctx, tokenString)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordReset(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.resetPassword(ctx, token, newPassword)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, email, password string) error {
	return m.deleteAccount(ctx, email, password)
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.CORS{}, logger.Nop())
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandler_Register(t *testing.T) {
	userID := primitive.NewObjectID()
	auth := &mockAuthService{
		registerUser: func(_ context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
			return models.User{UserID: userID, Email: req.Email, Name: req.Name},
				models.Token{SignedString: "signed-token", UserID: userID},
				nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, models.RegisterRequest{
		Email:    "viewer@example.com",
		Password: "Sup3rSecret",
		Name:     "Viewer",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed-token", rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "viewer@example.com", resp.User.Email)
}

func TestHandler_Register_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUser: func(context.Context, models.RegisterRequest) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, models.RegisterRequest{
		Email: "viewer@example.com", Password: "Sup3rSecret", Name: "Viewer",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Register_BadJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	userID := primitive.NewObjectID()
	auth := &mockAuthService{
		login: func(_ context.Context, email, password string) (models.User, models.Token, error) {
			assert.Equal(t, "viewer@example.com", email)
			assert.Equal(t, "Sup3rSecret", password)
			return models.User{UserID: userID, Email: email},
				models.Token{SignedString: "signed-token", UserID: userID},
				nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, models.LoginRequest{
		Email:    "viewer@example.com",
		Password: "Sup3rSecret",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-token", rec.Header().Get("Authorization"))

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "login must set the session cookie")
	assert.Equal(t, "signed-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		login: func(context.Context, string, string) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, models.LoginRequest{
		Email: "viewer@example.com", Password: "wrong",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Login_LockedAccount(t *testing.T) {
	lockUntil := time.Date(2026, time.March, 14, 12, 15, 0, 0, time.UTC)
	auth := &mockAuthService{
		login: func(context.Context, string, string) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, &service.AccountLockedError{Until: lockUntil}
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, models.LoginRequest{
		Email: "viewer@example.com", Password: "Sup3rSecret",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	// locked accounts answer 401 like every other auth failure, the
	// lock_until field in the body is what tells them apart
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, service.ErrAccountLocked.Error(), resp.Error)
	require.NotNil(t, resp.LockedUntil)
	assert.True(t, lockUntil.Equal(*resp.LockedUntil))
}

func TestHandler_ForgotPassword_AlwaysSameBody(t *testing.T) {
	for name, err := range map[string]error{"known email": nil} {
		t.Run(name, func(t *testing.T) {
			auth := &mockAuthService{
				requestPasswordReset: func(context.Context, string) error { return err },
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", jsonBody(t, models.ForgotPasswordRequest{
				Email: "viewer@example.com",
			}))
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandler_ResetPassword_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		resetPassword: func(context.Context, string, string) error {
			return service.ErrInvalidResetToken
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", jsonBody(t, models.ResetPasswordRequest{
		Token: "stale", Password: "N3wPassword",
	}))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteAccount(t *testing.T) {
	user := models.User{UserID: primitive.NewObjectID(), Email: "viewer@example.com"}
	auth := &mockAuthService{
		authenticate: func(context.Context, string) (models.User, error) {
			return user, nil
		},
		deleteAccount: func(_ context.Context, email, password string) error {
			assert.Equal(t, user.Email, email)
			assert.Equal(t, "Sup3rSecret", password)
			return nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodDelete, "/api/user", jsonBody(t, models.DeleteAccountRequest{
		Password: "Sup3rSecret",
	}))
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_Logout_ClearsCookie(t *testing.T) {
	auth := &mockAuthService{
		authenticate: func(context.Context, string) (models.User, error) {
			return models.User{UserID: primitive.NewObjectID()}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Empty(t, sessionCookie.Value)
	assert.Negative(t, sessionCookie.MaxAge)
}
