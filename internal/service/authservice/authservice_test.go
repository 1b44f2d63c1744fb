package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func strPtr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	service, userRepo, pinHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		pin           string
		phone         string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			username: "alice",
			pin:      "1234",
			phone:    "254712345678",
			prepareMock: func() {
				pinHasher.EXPECT().HashPIN("1234").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			expectedUser: &domain.User{
				Username:    "alice",
				PinHash:     "hashedpin",
				PhoneNumber: strPtr("0712345678"),
			},
		},
		{
			name:     "Registration without phone",
			username: "bob",
			pin:      "0000",
			prepareMock: func() {
				pinHasher.EXPECT().HashPIN("0000").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			expectedUser: &domain.User{
				Username: "bob",
				PinHash:  "hashedpin",
			},
		},
		{
			name:          "PIN too short",
			username:      "alice",
			pin:           "123",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "PIN not numeric",
			username:      "alice",
			pin:           "12a4",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Missing username",
			username:      "",
			pin:           "1234",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Invalid phone",
			username:      "alice",
			pin:           "1234",
			phone:         "555-0100",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "User already exists",
			username: "alice",
			pin:      "1234",
			prepareMock: func() {
				pinHasher.EXPECT().HashPIN("1234").Return("hashedpin", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Error hashing pin",
			username: "alice",
			pin:      "1234",
			prepareMock: func() {
				pinHasher.EXPECT().HashPIN("1234").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.username, tt.pin, tt.phone)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, pinHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		pin           string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "alice",
			pin:      "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{
					Username: "alice",
					PinHash:  "hashedpin",
				}, nil)
				pinHasher.EXPECT().ComparePIN("hashedpin", "1234").Return(true)
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			pin:      "1234",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "nobody").Return(nil, domain.ErrUserNotFound)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:     "Incorrect pin",
			username: "alice",
			pin:      "9999",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{
					Username: "alice",
					PinHash:  "hashedpin",
				}, nil)
				pinHasher.EXPECT().ComparePIN("hashedpin", "9999").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.pin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("alice", gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("alice", gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken("alice")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{Username: "alice", WordsRemaining: 30}, nil)

	user, err := service.GetUser(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(30), user.WordsRemaining)
}
