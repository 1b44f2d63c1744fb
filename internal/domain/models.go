package domain

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type User struct {
	Username       string    `db:"username"`
	PinHash        string    `db:"pin_hash"`
	WordsRemaining int64     `db:"words_remaining"`
	PhoneNumber    *string   `db:"phone_number"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Plan struct {
	ID          string
	Price       int64
	Words       int64
	Description string
}

// Transaction is the authoritative record of a payment attempt, keyed by the
// provider-issued correlation id.
type Transaction struct {
	CorrelationID string            `db:"correlation_id"`
	Username      string            `db:"username"`
	PlanID        string            `db:"plan_id"`
	Amount        int64             `db:"amount"`
	Words         int64             `db:"words"`
	PhoneNumber   string            `db:"phone_number"`
	Status        TransactionStatus `db:"status"`
	Reference     *string           `db:"reference"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

// Payment is an append-only history entry, one per settlement event.
type Payment struct {
	ID            string            `db:"id"`
	Username      string            `db:"username"`
	Amount        int64             `db:"amount"`
	PlanID        string            `db:"plan_id"`
	Status        TransactionStatus `db:"status"`
	Reference     *string           `db:"reference"`
	CorrelationID *string           `db:"correlation_id"`
	CreatedAt     time.Time         `db:"created_at"`
}

// Settlement is the outcome of a completion path reaching the ledger.
type Settlement struct {
	CorrelationID string
	Reference     string
	Status        TransactionStatus
	WordsAdded    int64
	NewBalance    int64
	Duplicate     bool
}
