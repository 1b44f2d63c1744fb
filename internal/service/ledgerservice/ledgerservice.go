package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/metrics"
	"go.uber.org/zap"
)

type Repo interface {
	Credit(ctx context.Context, username string, words int64) (int64, error)
	DebitIfSufficient(ctx context.Context, username string, words int64) (bool, int64, error)
	Balance(ctx context.Context, username string) (int64, error)
}

// Service is the word ledger. Balances live on the user row and are only
// changed through conditional updates.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Credit adds words and returns the new balance.
func (s *Service) Credit(ctx context.Context, username string, words int64) (int64, error) {
	if words <= 0 {
		return 0, fmt.Errorf("%w: words to credit must be positive", domain.ErrInvalidArgument)
	}
	balance, err := s.repo.Credit(ctx, username, words)
	if err != nil {
		zap.L().Error("failed to credit words", zap.String("username", username), zap.Int64("words", words), zap.Error(err))
		return 0, err
	}
	metrics.WordsCredited.Add(float64(words))
	zap.L().Info("words credited", zap.String("username", username), zap.Int64("words", words), zap.Int64("balance", balance))
	return balance, nil
}

// ConsumeWords deducts words when the balance covers them and returns the
// remaining balance. A short balance yields *domain.InsufficientBalanceError
// and leaves the balance untouched.
func (s *Service) ConsumeWords(ctx context.Context, username string, words int64) (int64, error) {
	if words <= 0 {
		return 0, fmt.Errorf("%w: words must be a positive integer", domain.ErrInvalidArgument)
	}
	ok, balance, err := s.repo.DebitIfSufficient(ctx, username, words)
	if err != nil {
		return 0, err
	}
	if !ok {
		zap.L().Info("insufficient words", zap.String("username", username), zap.Int64("requested", words), zap.Int64("available", balance))
		return balance, &domain.InsufficientBalanceError{Requested: words, Available: balance}
	}
	metrics.WordsConsumed.Add(float64(words))
	return balance, nil
}

func (s *Service) Balance(ctx context.Context, username string) (int64, error) {
	return s.repo.Balance(ctx, username)
}
