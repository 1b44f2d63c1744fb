package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = `correlation_id, username, plan_id, amount, words, phone_number, status, reference, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (correlation_id, username, plan_id, amount, words, phone_number, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	var reference string
	if tx.Reference != nil {
		reference = *tx.Reference
	}
	err := r.db.QueryRow(ctx, query,
		tx.CorrelationID, tx.Username, tx.PlanID, tx.Amount, tx.Words, tx.PhoneNumber, string(tx.Status), pg.Nullable(reference),
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, tx.CorrelationID)
		}
		zap.L().Error("can't save transaction", zap.String("correlation_id", tx.CorrelationID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, correlationID string) (*domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE correlation_id = $1`
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, correlationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		zap.L().Error("can't find transaction", zap.String("correlation_id", correlationID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// UpdateStatus moves a pending transaction to a terminal status. The status
// check and the write are one statement, so of several concurrent callers
// exactly one gets the updated row; the rest observe ErrAlreadyTerminal.
func (r *Repository) UpdateStatus(ctx context.Context, correlationID string, status domain.TransactionStatus, reference string) (*domain.Transaction, error) {
	if !status.IsTerminal() {
		return nil, fmt.Errorf("%w: status %q is not terminal", domain.ErrInvalidArgument, status)
	}

	query := `
		UPDATE transactions
		SET status = $2, reference = COALESCE($3, reference), updated_at = now()
		WHERE correlation_id = $1 AND status = 'pending'
		RETURNING ` + columns
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, correlationID, string(status), pg.Nullable(reference)))
	if err == nil {
		return tx, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to update transaction status", zap.String("correlation_id", correlationID), zap.Error(err))
		return nil, err
	}

	var current string
	err = r.db.QueryRow(ctx, `SELECT status FROM transactions WHERE correlation_id = $1`, correlationID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s is %s", domain.ErrAlreadyTerminal, correlationID, current)
}

func (r *Repository) ListByUser(ctx context.Context, username string) ([]domain.Transaction, error) {
	query := `SELECT ` + columns + ` FROM transactions WHERE username = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tx     domain.Transaction
		status string
	)
	err := row.Scan(&tx.CorrelationID, &tx.Username, &tx.PlanID, &tx.Amount, &tx.Words,
		&tx.PhoneNumber, &status, &tx.Reference, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tx.Status = domain.TransactionStatus(status)
	return &tx, nil
}
