package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery = `INSERT INTO payments (id, username, amount, plan_id, status, reference, correlation_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	listQuery   = `SELECT id::text, username, amount, plan_id, status, reference, correlation_id, created_at FROM payments WHERE username = $1 ORDER BY created_at DESC`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func ptr(s string) *string { return &s }

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := ptr("R1")
	correlationID := ptr("abc")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Saves payment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("p-1", "alice", int64(20), "basic", "completed", reference, correlationID).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("p-1", "alice", int64(20), "basic", "completed", reference, correlationID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payment := &domain.Payment{
				ID:            "p-1",
				Username:      "alice",
				Amount:        20,
				PlanID:        "basic",
				Status:        domain.StatusCompleted,
				Reference:     reference,
				CorrelationID: correlationID,
			}
			err := repo.Create(context.Background(), payment)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, payment.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	columns := []string{"id", "username", "amount", "plan_id", "status", "reference", "correlation_id", "created_at"}

	tests := []struct {
		name          string
		mockSetup     func()
		expectedCount int
		expectErr     error
	}{
		{
			name: "Newest first",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("p-2", "alice", int64(50), "premium", "failed", nil, ptr("def"), now).
						AddRow("p-1", "alice", int64(20), "basic", "completed", ptr("R1"), ptr("abc"), now.Add(-time.Hour)))
			},
			expectedCount: 2,
		},
		{
			name: "No payments",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows(columns))
			},
		},
		{
			name: "Query error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("alice").
					WillReturnError(errors.New("query error"))
			},
			expectErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payments, err := repo.ListByUser(context.Background(), "alice")
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				require.NoError(t, err)
				assert.Len(t, payments, tt.expectedCount)
				if tt.expectedCount > 0 {
					assert.Equal(t, domain.StatusFailed, payments[0].Status)
					assert.Nil(t, payments[0].Reference)
					assert.Equal(t, "R1", *payments[1].Reference)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
