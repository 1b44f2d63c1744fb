package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectUserQuery = `SELECT username, pin_hash, words_remaining, phone_number, created_at, updated_at FROM users WHERE username = $1`
	insertUserQuery = `INSERT INTO users (username, pin_hash, words_remaining, phone_number) VALUES ($1, $2, 0, $3) RETURNING created_at, updated_at`
	creditQuery     = `UPDATE users SET words_remaining = words_remaining + $2, updated_at = now() WHERE username = $1 RETURNING words_remaining`
	debitQuery      = `UPDATE users SET words_remaining = words_remaining - $2, updated_at = now() WHERE username = $1 AND words_remaining >= $2 RETURNING words_remaining`
	balanceQuery    = `SELECT words_remaining FROM users WHERE username = $1`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	phone := "0712345678"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.User
	}{
		{
			name: "User exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"username", "pin_hash", "words_remaining", "phone_number", "created_at", "updated_at"}).
					AddRow("alice", "hash", int64(100), &phone, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs("alice").WillReturnRows(rows)
			},
			result: &domain.User{
				Username:       "alice",
				PinHash:        "hash",
				WordsRemaining: 100,
				PhoneNumber:    &phone,
				CreatedAt:      now,
				UpdatedAt:      now,
			},
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserQuery)).WithArgs("alice").WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByUsername(context.Background(), "alice")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Creates user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
			WithArgs("alice", "hash", (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		user, err := repo.Create(context.Background(), &domain.User{Username: "alice", PinHash: "hash"})
		require.NoError(t, err)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate username", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(insertUserQuery)).
			WithArgs("alice", "hash", (*string)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.Create(context.Background(), &domain.User{Username: "alice", PinHash: "hash"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		balance   int64
	}{
		{
			name: "Credits words",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
					WithArgs("alice", int64(100)).
					WillReturnRows(pgxmock.NewRows([]string{"words_remaining"}).AddRow(int64(150)))
			},
			balance: 150,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
					WithArgs("alice", int64(100)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrUserNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
					WithArgs("alice", int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.Credit(context.Background(), "alice", 100)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DebitIfSufficient(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		ok        bool
		balance   int64
	}{
		{
			name: "Sufficient balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs("alice", int64(30)).
					WillReturnRows(pgxmock.NewRows([]string{"words_remaining"}).AddRow(int64(20)))
			},
			ok:      true,
			balance: 20,
		},
		{
			name: "Insufficient balance reports current balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs("alice", int64(30)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows([]string{"words_remaining"}).AddRow(int64(20)))
			},
			ok:      false,
			balance: 20,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs("alice", int64(30)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs("alice").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, balance, err := repo.DebitIfSufficient(context.Background(), "alice", 30)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.ok, ok)
				assert.Equal(t, tt.balance, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
