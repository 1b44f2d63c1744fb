package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository owns the users table, including the word balance column that
// backs the ledger.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, pin_hash, words_remaining, phone_number, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, username).Scan(
		&user.Username, &user.PinHash, &user.WordsRemaining, &user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, pin_hash, words_remaining, phone_number)
		VALUES ($1, $2, 0, $3)
		RETURNING created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.PinHash, user.PhoneNumber).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Credit adds words to the balance and returns the new balance.
func (repo *Repository) Credit(ctx context.Context, username string, words int64) (int64, error) {
	query := `
		UPDATE users
		SET words_remaining = words_remaining + $2, updated_at = now()
		WHERE username = $1
		RETURNING words_remaining
	`
	var balance int64
	err := repo.db.QueryRow(ctx, query, username, words).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("failed to credit words", zap.String("username", username), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// DebitIfSufficient deducts words in a single conditional update so that
// concurrent debits can never overdraw the balance. When the balance is too
// low it reports false together with the unchanged balance.
func (repo *Repository) DebitIfSufficient(ctx context.Context, username string, words int64) (bool, int64, error) {
	query := `
		UPDATE users
		SET words_remaining = words_remaining - $2, updated_at = now()
		WHERE username = $1 AND words_remaining >= $2
		RETURNING words_remaining
	`
	var balance int64
	err := repo.db.QueryRow(ctx, query, username, words).Scan(&balance)
	if err == nil {
		return true, balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to debit words", zap.String("username", username), zap.Error(err))
		return false, 0, err
	}

	current, err := repo.Balance(ctx, username)
	if err != nil {
		return false, 0, err
	}
	return false, current, nil
}

func (repo *Repository) Balance(ctx context.Context, username string) (int64, error) {
	var balance int64
	err := repo.db.QueryRow(ctx, `SELECT words_remaining FROM users WHERE username = $1`, username).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("failed to get balance", zap.String("username", username), zap.Error(err))
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}
