package callback

//go:generate mockgen -source=callback.go -destination=mock_callback.go -package=callback

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	cbqueue "github.com/GlebRadaev/wordpay/internal/callback"
	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
	"github.com/GlebRadaev/wordpay/internal/metrics"
	"github.com/GlebRadaev/wordpay/pkg/utils"
)

const TokenHeader = "X-Callback-Token"

type Service interface {
	Reconcile(ctx context.Context, correlationID, reference string) (*domain.Settlement, error)
	Fail(ctx context.Context, correlationID, reason string) (*domain.Settlement, error)
}

type CallbackHandler struct {
	service Service
	queue   cbqueue.QueueI
	secret  string
}

// New returns a handler that settles callbacks in the request. With a
// non-nil queue callbacks are acknowledged with 202 and settled by its
// workers instead.
func New(service Service, queue cbqueue.QueueI, secret string) *CallbackHandler {
	return &CallbackHandler{
		service: service,
		queue:   queue,
		secret:  secret,
	}
}

// Callback godoc
//
//	@Summary		Provider payment callback
//	@Description	Completes (or fails) a pending payment. Safe to deliver more than once.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request			body		dto.CallbackRequestDTO	true	"Provider callback"
//	@Param			X-Callback-Token	header		string					false	"Shared secret, when configured"
//	@Success		200				{object}	dto.SettlementResponseDTO	"Payment completed, words credited"
//	@Success		202				{object}	dto.PaymentStateResponseDTO	"Queued for processing"
//	@Failure		400				{object}	utils.Response				"Invalid callback data"
//	@Failure		401				{object}	utils.Response				"Invalid callback token"
//	@Failure		404				{object}	utils.Response				"Transaction not found"
//	@Failure		503				{object}	utils.Response				"Queue full, retry later"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/payments/callback [post]
func (h *CallbackHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(TokenHeader)), []byte(h.secret)) != 1 {
		metrics.Callbacks.WithLabelValues("unauthorized").Inc()
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid callback token")
		return
	}

	var req dto.CallbackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.Callbacks.WithLabelValues("invalid").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid callback data")
		return
	}
	if req.ID() == "" {
		metrics.Callbacks.WithLabelValues("invalid").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, "correlationId is required")
		return
	}

	if h.queue != nil {
		err := h.queue.TryEnqueue(func(ctx context.Context) error {
			_, err := h.settle(ctx, &req)
			return err
		})
		if err != nil {
			metrics.Callbacks.WithLabelValues("rejected").Inc()
			zap.L().Warn("callback not queued", zap.String("correlation_id", req.ID()), zap.Error(err))
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Callback queue is full, retry later")
			return
		}
		metrics.Callbacks.WithLabelValues("queued").Inc()
		utils.RespondWithJSON(w, http.StatusAccepted, dto.PaymentStateResponseDTO{
			CorrelationID: req.ID(),
			Status:        "queued",
		})
		return
	}

	settlement, err := h.settle(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			metrics.Callbacks.WithLabelValues("not_found").Inc()
			utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
		case errors.Is(err, domain.ErrInvalidArgument):
			metrics.Callbacks.WithLabelValues("invalid").Inc()
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			metrics.Callbacks.WithLabelValues("error").Inc()
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if settlement.Duplicate || settlement.Status != domain.StatusCompleted {
		result := "failed"
		if settlement.Duplicate {
			result = "duplicate"
		}
		metrics.Callbacks.WithLabelValues(result).Inc()
		utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStateResponseDTO{
			CorrelationID: settlement.CorrelationID,
			Status:        string(settlement.Status),
			Duplicate:     settlement.Duplicate,
		})
		return
	}

	metrics.Callbacks.WithLabelValues("completed").Inc()
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		CorrelationID: settlement.CorrelationID,
		Reference:     settlement.Reference,
		WordsAdded:    settlement.WordsAdded,
		NewBalance:    settlement.NewBalance,
	})
}

func (h *CallbackHandler) settle(ctx context.Context, req *dto.CallbackRequestDTO) (*domain.Settlement, error) {
	if req.Failed() {
		return h.service.Fail(ctx, req.ID(), req.Reason())
	}
	return h.service.Reconcile(ctx, req.ID(), req.Ref())
}
