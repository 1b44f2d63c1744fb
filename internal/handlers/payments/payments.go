package payments

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
	"github.com/GlebRadaev/wordpay/internal/gateway"
	"github.com/GlebRadaev/wordpay/internal/service/paymentservice"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/GlebRadaev/wordpay/pkg/utils"
	"github.com/GlebRadaev/wordpay/pkg/validate"
)

type Service interface {
	Initiate(ctx context.Context, username, phone, planID string) (*paymentservice.InitiateResult, error)
	Status(ctx context.Context, correlationID string) (*domain.Transaction, error)
	History(ctx context.Context, username string) ([]domain.Payment, error)
	Plans() []domain.Plan
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Initiate godoc
//
//	@Summary		Buy a subscription
//	@Description	Send a push-payment request to the user's phone. Words are credited immediately when the provider confirms in-line, otherwise after the callback.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiatePaymentRequestDTO	true	"Payment request"
//	@Success		200		{object}	dto.SettlementResponseDTO		"Payment completed, words credited"
//	@Success		202		{object}	dto.PaymentStateResponseDTO		"Payment pending provider confirmation"
//	@Failure		400		{object}	utils.Response					"Invalid input or payment declined"
//	@Failure		404		{object}	utils.Response					"User not found"
//	@Failure		502		{object}	utils.Response					"Payment provider unavailable"
//	@Failure		504		{object}	utils.Response					"Payment provider timed out"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/payments/initiate [post]
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req dto.InitiatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
		return
	}

	res, err := h.paymentService.Initiate(r.Context(), req.UserID, req.ContactHandle, req.PlanID)
	if err != nil {
		var rejected *domain.GatewayRejectedError
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.As(err, &rejected):
			utils.RespondWithError(w, http.StatusBadRequest, rejected.Message)
		case errors.Is(err, domain.ErrGatewayTimeout):
			utils.RespondWithError(w, http.StatusGatewayTimeout, "Payment provider timed out")
		case errors.Is(err, domain.ErrGatewayUnreachable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
		case errors.Is(err, domain.ErrDuplicateTransaction):
			utils.RespondWithError(w, http.StatusConflict, "Payment already recorded")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if res.Outcome == gateway.OutcomeSettled {
		utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
			CorrelationID: res.CorrelationID,
			Reference:     res.Reference,
			WordsAdded:    res.WordsAdded,
			NewBalance:    res.NewBalance,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.PaymentStateResponseDTO{
		CorrelationID: res.CorrelationID,
		Status:        string(res.Status),
	})
}

// Status godoc
//
//	@Summary		Payment status
//	@Description	Current state of a payment transaction
//	@Tags			Payments
//	@Produce		json
//	@Param			correlationID	path		string	true	"Provider correlation id"
//	@Success		200				{object}	dto.PaymentStatusResponseDTO
//	@Failure		404				{object}	utils.Response	"Transaction not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/payments/{correlationID}/status [get]
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	correlationID := chi.URLParam(r, "correlationID")

	tx, err := h.paymentService.Status(r.Context(), correlationID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{
		CorrelationID: tx.CorrelationID,
		Status:        string(tx.Status),
		Reference:     tx.Reference,
		Amount:        tx.Amount,
		Plan:          tx.PlanID,
		Timestamp:     tx.UpdatedAt,
	})
}

// History godoc
//
//	@Summary		Payment history
//	@Description	Payment records of the authenticated user, newest first
//	@Tags			Users
//	@Produce		json
//	@Param			username	path	string	true	"Username"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentHistoryItemDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/{username}/payments [get]
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if subject, ok := auth.UsernameFromContext(r.Context()); !ok || subject != username {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	payments, err := h.paymentService.History(r.Context(), username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PaymentHistoryItemDTO, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.PaymentHistoryItemDTO{
			ID:            p.ID,
			Amount:        p.Amount,
			Plan:          p.PlanID,
			Status:        string(p.Status),
			Reference:     p.Reference,
			CorrelationID: p.CorrelationID,
			CreatedAt:     p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Plans godoc
//
//	@Summary		Subscription plans
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}	dto.PlanDTO
//	@Router			/plans [get]
func (h *PaymentHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans := h.paymentService.Plans()
	response := make([]dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		response = append(response, dto.PlanDTO{
			ID:          p.ID,
			Price:       p.Price,
			Words:       p.Words,
			Description: p.Description,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
