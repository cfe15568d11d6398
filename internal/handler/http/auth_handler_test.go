package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	canteenHandler "github.com/vasiliy-maslov/canteen-service/internal/handler/http"
	"github.com/vasiliy-maslov/canteen-service/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, input user.SignupInput) (*user.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*user.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func newAuthRouter(svc user.Service) chi.Router {
	router := chi.NewRouter()
	canteenHandler.NewAuthHandler(svc).RegisterRoutes(router)
	return router
}

func TestAuthHandler_handleSignup_Success(t *testing.T) {
	mockService := new(MockUserService)
	router := newAuthRouter(mockService)

	created := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$secret",
	}
	mockService.On("Signup", mock.Anything, user.SignupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "pw",
	}).Return(created, nil).Once()

	rr := serve(router, http.MethodPost, "/api/auth/signup", `{"name":"Asha","email":"asha@example.com","password":"pw"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, created.ID.String(), got["id"])
	assert.Equal(t, false, got["is_admin"])
	assert.NotContains(t, got, "password_hash", "hash must never leave the service")
	mockService.AssertExpectations(t)
}

func TestAuthHandler_handleSignup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMock   func(m *MockUserService)
		wantCode    int
		wantMessage string
	}{
		{
			name:      "invalid_email",
			body:      `{"name":"A","email":"not-an-email","password":"pw"}`,
			setupMock: func(m *MockUserService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing_password",
			body:      `{"name":"A","email":"a@example.com"}`,
			setupMock: func(m *MockUserService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "email_exists",
			body: `{"name":"A","email":"a@example.com","password":"pw"}`,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, mock.Anything).Return(nil, user.ErrEmailExists).Once()
			},
			wantCode:    http.StatusConflict,
			wantMessage: "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUserService)
			tt.setupMock(mockService)
			router := newAuthRouter(mockService)

			rr := serve(router, http.MethodPost, "/api/auth/signup", tt.body)

			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rr))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_handleLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockUserService)
		router := newAuthRouter(mockService)

		session := &user.Session{
			Token: "dG9rZW4=",
			User:  &user.User{ID: uuid.Must(uuid.NewV4()), Email: "a@example.com"},
		}
		mockService.On("Login", mock.Anything, "a@example.com", "pw").Return(session, nil).Once()

		rr := serve(router, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"pw"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		var got user.Session
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, session.Token, got.Token)
		require.NotNil(t, got.User)
		assert.Equal(t, session.User.ID, got.User.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		mockService := new(MockUserService)
		router := newAuthRouter(mockService)
		mockService.On("Login", mock.Anything, "a@example.com", "bad").Return(nil, user.ErrInvalidCredentials).Once()

		rr := serve(router, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"bad"}`)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, rr))
	})
}
