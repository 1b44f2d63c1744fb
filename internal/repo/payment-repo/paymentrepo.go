package paymentrepo

import (
	"context"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"go.uber.org/zap"
)

// Repository keeps the append-only payment history.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, username, amount, plan_id, status, reference, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		payment.ID, payment.Username, payment.Amount, payment.PlanID, string(payment.Status), payment.Reference, payment.CorrelationID,
	).Scan(&payment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.String("username", payment.Username), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, username string) ([]domain.Payment, error) {
	query := `
		SELECT id::text, username, amount, plan_id, status, reference, correlation_id, created_at
		FROM payments
		WHERE username = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var (
			p      domain.Payment
			status string
		)
		err := rows.Scan(&p.ID, &p.Username, &p.Amount, &p.PlanID, &status, &p.Reference, &p.CorrelationID, &p.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		p.Status = domain.TransactionStatus(status)
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
