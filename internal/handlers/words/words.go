package words

//go:generate mockgen -source=words.go -destination=mock_words.go -package=words

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
	"github.com/GlebRadaev/wordpay/pkg/utils"
	"github.com/GlebRadaev/wordpay/pkg/validate"
)

type Service interface {
	ConsumeWords(ctx context.Context, username string, words int64) (int64, error)
}

type WordsHandler struct {
	ledger Service
}

func New(ledger Service) *WordsHandler {
	return &WordsHandler{
		ledger: ledger,
	}
}

// Consume godoc
//
//	@Summary		Use words
//	@Description	Deduct words from the user's balance. Nothing is deducted when the balance is too low.
//	@Tags			Words
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConsumeWordsRequestDTO	true	"Words to use"
//	@Success		200		{object}	dto.ConsumeWordsResponseDTO
//	@Failure		400		{object}	dto.InsufficientWordsResponseDTO	"Insufficient words or invalid request"
//	@Failure		404		{object}	utils.Response						"User not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/words/consume [post]
func (h *WordsHandler) Consume(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsumeWordsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "userId is required")
		return
	}

	remaining, err := h.ledger.ConsumeWords(r.Context(), req.UserID, req.Words)
	if err != nil {
		var insufficient *domain.InsufficientBalanceError
		switch {
		case errors.As(err, &insufficient):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.InsufficientWordsResponseDTO{
				Error:     "Insufficient words",
				Requested: insufficient.Requested,
				Available: insufficient.Available,
			})
		case errors.Is(err, domain.ErrInvalidArgument):
			utils.RespondWithError(w, http.StatusBadRequest, "words must be a positive integer")
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConsumeWordsResponseDTO{
		WordsUsed:      req.Words,
		WordsRemaining: remaining,
	})
}
