package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
	"github.com/GlebRadaev/wordpay/pkg/auth"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"alice","pin":"1234","contactHandle":"0712345678"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "alice", "1234", "0712345678").Return(&domain.User{Username: "alice"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"username":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "PIN with letters",
			body:          `{"username":"alice","pin":"12ab"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "4-digit PIN",
		},
		{
			name:          "Invalid phone",
			body:          `{"username":"alice","pin":"1234","contactHandle":"555"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "4-digit PIN",
		},
		{
			name: "User already exists",
			body: `{"username":"alice","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "alice", "1234", "").Return(nil, domain.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username already exists",
		},
		{
			name: "Internal server error",
			body: `{"username":"alice","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "alice", "1234", "").Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedHeader string
		expectedError  string
	}{
		{
			name: "Successful login",
			body: `{"username":"alice","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "1234").Return(&domain.User{Username: "alice"}, nil)
				service.EXPECT().GenerateToken("alice").Return("token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer token",
		},
		{
			name: "Unknown user",
			body: `{"username":"nobody","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "nobody", "1234").Return(nil, domain.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "Wrong PIN",
			body: `{"username":"alice","pin":"9999"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "9999").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid PIN",
		},
		{
			name: "Error generating token",
			body: `{"username":"alice","pin":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "alice", "1234").Return(&domain.User{Username: "alice"}, nil)
				service.EXPECT().GenerateToken("alice").Return("", errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
		{
			name:          "Invalid request body",
			body:          `nope`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedHeader, w.Header().Get("Authorization"))
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestProfileHandler(t *testing.T) {
	handler, service := NewMock(t)
	phone := "0712345678"

	tests := []struct {
		name         string
		subject      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Own profile",
			subject: "alice",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), "alice").Return(&domain.User{
					Username:       "alice",
					WordsRemaining: 30,
					PhoneNumber:    &phone,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Another user's profile",
			subject:      "bob",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Deleted user",
			subject: "alice",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), "alice").Return(nil, domain.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("username", "alice")
			ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, auth.UsernameKey, tt.subject)
			r := httptest.NewRequest(http.MethodGet, "/users/alice", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Profile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(30), body.WordsRemaining)
				assert.Equal(t, phone, *body.ContactHandle)
			}
		})
	}
}
