package paymentservice

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/gateway"
	"github.com/GlebRadaev/wordpay/internal/metrics"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"github.com/GlebRadaev/wordpay/internal/plans"
	"github.com/GlebRadaev/wordpay/pkg/validate"
)

const (
	pathInline   = "inline"
	pathCallback = "callback"
)

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Get(ctx context.Context, correlationID string) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, correlationID string, status domain.TransactionStatus, reference string) (*domain.Transaction, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByUser(ctx context.Context, username string) ([]domain.Payment, error)
}

type Ledger interface {
	Credit(ctx context.Context, username string, words int64) (int64, error)
	Balance(ctx context.Context, username string) (int64, error)
}

type Gateway interface {
	Submit(ctx context.Context, phone string, amount int64, callbackURL string) (gateway.Result, error)
}

// InitiateResult describes what the provider did with a new payment. For
// OutcomeSettled the words are already credited; for OutcomePending the
// transaction waits for a callback.
type InitiateResult struct {
	Outcome       gateway.Outcome
	CorrelationID string
	Status        domain.TransactionStatus
	Reference     string
	WordsAdded    int64
	NewBalance    int64
}

type Service struct {
	txRepo      TransactionRepo
	paymentRepo PaymentRepo
	ledger      Ledger
	gateway     Gateway
	txManager   pg.TXManager
	catalog     *plans.Catalog
	callbackURL string
}

func New(txRepo TransactionRepo, paymentRepo PaymentRepo, ledger Ledger, gw Gateway, txManager pg.TXManager, catalog *plans.Catalog, callbackURL string) *Service {
	return &Service{
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		gateway:     gw,
		txManager:   txManager,
		catalog:     catalog,
		callbackURL: callbackURL,
	}
}

func (s *Service) Initiate(ctx context.Context, username, phone, planID string) (*InitiateResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}
	normalized, ok := validate.NormalizePhone(phone)
	if !ok {
		return nil, fmt.Errorf("%w: invalid contact handle %q", domain.ErrInvalidArgument, phone)
	}
	if _, err := s.ledger.Balance(ctx, username); err != nil {
		return nil, err
	}

	plan := s.catalog.Lookup(planID)
	res, err := s.gateway.Submit(ctx, normalized, plan.Price, s.callbackURL)
	if err != nil {
		metrics.PaymentsInitiated.WithLabelValues("unreachable").Inc()
		zap.L().Error("payment gateway unavailable", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	metrics.PaymentsInitiated.WithLabelValues(res.Outcome.String()).Inc()

	tx := &domain.Transaction{
		CorrelationID: res.CorrelationID,
		Username:      username,
		PlanID:        plan.ID,
		Amount:        plan.Price,
		Words:         plan.Words,
		PhoneNumber:   normalized,
		Status:        domain.StatusPending,
	}

	switch res.Outcome {
	case gateway.OutcomeSettled:
		var settlement *domain.Settlement
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.txRepo.Create(ctx, tx); err != nil {
				return err
			}
			var err error
			settlement, err = s.settleTx(ctx, tx.CorrelationID, res.Reference, domain.StatusCompleted)
			return err
		})
		if err != nil {
			zap.L().Error("failed to settle inline payment", zap.String("correlation_id", tx.CorrelationID), zap.Error(err))
			return nil, err
		}
		observeSettlement(pathInline, settlement)
		return &InitiateResult{
			Outcome:       res.Outcome,
			CorrelationID: settlement.CorrelationID,
			Status:        settlement.Status,
			Reference:     settlement.Reference,
			WordsAdded:    settlement.WordsAdded,
			NewBalance:    settlement.NewBalance,
		}, nil

	case gateway.OutcomePending:
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.txRepo.Create(ctx, tx); err != nil {
				return err
			}
			return s.paymentRepo.Create(ctx, newPayment(tx, domain.StatusPending))
		})
		if err != nil {
			zap.L().Error("failed to record pending payment", zap.String("correlation_id", tx.CorrelationID), zap.Error(err))
			return nil, err
		}
		zap.L().Info("payment pending", zap.String("correlation_id", tx.CorrelationID), zap.String("username", username))
		return &InitiateResult{
			Outcome:       res.Outcome,
			CorrelationID: tx.CorrelationID,
			Status:        domain.StatusPending,
		}, nil

	default:
		failed := &domain.Payment{
			ID:       uuid.NewString(),
			Username: username,
			Amount:   plan.Price,
			PlanID:   plan.ID,
			Status:   domain.StatusFailed,
		}
		if err := s.paymentRepo.Create(ctx, failed); err != nil {
			zap.L().Error("failed to record rejected payment", zap.String("username", username), zap.Error(err))
		}
		zap.L().Info("payment rejected", zap.String("username", username), zap.String("message", res.Message))
		return nil, &domain.GatewayRejectedError{Message: res.Message}
	}
}

// Reconcile completes the pending transaction named by a provider callback
// and credits its words. Repeated calls for the same transaction return a
// Settlement with Duplicate set and change nothing.
func (s *Service) Reconcile(ctx context.Context, correlationID, reference string) (*domain.Settlement, error) {
	return s.resolve(ctx, correlationID, reference, domain.StatusCompleted)
}

// Fail marks a pending transaction failed without crediting.
func (s *Service) Fail(ctx context.Context, correlationID, reason string) (*domain.Settlement, error) {
	zap.L().Info("provider reported failed payment", zap.String("correlation_id", correlationID), zap.String("reason", reason))
	return s.resolve(ctx, correlationID, "", domain.StatusFailed)
}

func (s *Service) resolve(ctx context.Context, correlationID, reference string, status domain.TransactionStatus) (*domain.Settlement, error) {
	correlationID = strings.TrimSpace(correlationID)
	if correlationID == "" {
		return nil, fmt.Errorf("%w: correlation id is required", domain.ErrInvalidArgument)
	}
	if _, err := s.txRepo.Get(ctx, correlationID); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			zap.L().Warn("callback for unknown transaction", zap.String("correlation_id", correlationID))
		}
		return nil, err
	}

	var settlement *domain.Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		settlement, err = s.settleTx(ctx, correlationID, reference, status)
		return err
	})
	if err != nil {
		zap.L().Error("failed to settle transaction", zap.String("correlation_id", correlationID), zap.Error(err))
		return nil, err
	}
	observeSettlement(pathCallback, settlement)
	return settlement, nil
}

// settleTx is the only place a transaction leaves pending. It must run
// inside txManager.Begin.
func (s *Service) settleTx(ctx context.Context, correlationID, reference string, status domain.TransactionStatus) (*domain.Settlement, error) {
	tx, err := s.txRepo.UpdateStatus(ctx, correlationID, status, reference)
	if errors.Is(err, domain.ErrAlreadyTerminal) {
		current, err := s.txRepo.Get(ctx, correlationID)
		if err != nil {
			return nil, err
		}
		zap.L().Info("transaction already settled", zap.String("correlation_id", correlationID), zap.String("status", string(current.Status)))
		return &domain.Settlement{
			CorrelationID: correlationID,
			Reference:     deref(current.Reference),
			Status:        current.Status,
			Duplicate:     true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, newPayment(tx, status)); err != nil {
		return nil, err
	}

	settlement := &domain.Settlement{
		CorrelationID: correlationID,
		Reference:     deref(tx.Reference),
		Status:        status,
	}
	if status != domain.StatusCompleted {
		return settlement, nil
	}

	balance, err := s.ledger.Credit(ctx, tx.Username, tx.Words)
	if err != nil {
		return nil, err
	}
	settlement.WordsAdded = tx.Words
	settlement.NewBalance = balance
	zap.L().Info("payment completed",
		zap.String("correlation_id", correlationID),
		zap.String("username", tx.Username),
		zap.Int64("words", tx.Words),
		zap.Int64("balance", balance),
	)
	return settlement, nil
}

func (s *Service) Status(ctx context.Context, correlationID string) (*domain.Transaction, error) {
	return s.txRepo.Get(ctx, correlationID)
}

func (s *Service) History(ctx context.Context, username string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, username)
	if err != nil {
		zap.L().Error("failed to fetch payment history", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) Plans() []domain.Plan {
	return s.catalog.List()
}

func newPayment(tx *domain.Transaction, status domain.TransactionStatus) *domain.Payment {
	correlationID := tx.CorrelationID
	return &domain.Payment{
		ID:            uuid.NewString(),
		Username:      tx.Username,
		Amount:        tx.Amount,
		PlanID:        tx.PlanID,
		Status:        status,
		Reference:     tx.Reference,
		CorrelationID: &correlationID,
	}
}

func observeSettlement(path string, s *domain.Settlement) {
	result := "applied"
	if s.Duplicate {
		result = "duplicate"
	}
	metrics.Settlements.WithLabelValues(path, string(s.Status), result).Inc()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
