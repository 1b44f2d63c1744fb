package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/GlebRadaev/wordpay/pkg/validate"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a user with a zero word balance. The contact handle is
// optional and stored in the provider's format.
func (s *Service) Register(ctx context.Context, username, pin, phone string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidArgument)
	}
	if !validate.IsPIN(pin) {
		return nil, fmt.Errorf("%w: PIN must be exactly 4 digits", domain.ErrInvalidArgument)
	}

	var phoneNumber *string
	if phone != "" {
		normalized, ok := validate.NormalizePhone(phone)
		if !ok {
			return nil, fmt.Errorf("%w: invalid phone number %q", domain.ErrInvalidArgument, phone)
		}
		phoneNumber = &normalized
	}

	hashedPIN, err := s.hashService.HashPIN(pin)
	if err != nil {
		zap.L().Error("can't hash pin", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:    username,
		PinHash:     hashedPIN,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			zap.L().Info("user already exists", zap.String("username", username))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, username, pin string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if ok := s.hashService.ComparePIN(user.PinHash, pin); !ok {
		zap.L().Info("invalid pin", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(username string) (string, error) {
	token, err := s.jwtService.GenerateJWT(username, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}
