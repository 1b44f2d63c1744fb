package users

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/wordpay/internal/domain"
	"github.com/GlebRadaev/wordpay/internal/dto"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/GlebRadaev/wordpay/pkg/utils"
	"github.com/GlebRadaev/wordpay/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, username, pin, phone string) (*domain.User, error)
	Authenticate(ctx context.Context, username, pin string) (*domain.User, error)
	GenerateToken(username string) (string, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

type UserHandler struct {
	authService Service
}

func New(authService Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account with a 4-digit PIN and an optional phone number
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and a 4-digit PIN are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.PIN, req.ContactHandle)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, "Username already exists")
		case errors.Is(err, domain.ErrInvalidArgument):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message:  "User registered successfully",
		Username: user.Username,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and PIN and get a JWT token in the Authorization header
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid PIN"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and a 4-digit PIN are required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid PIN")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Login successful",
	})
}

// Profile godoc
//
//	@Summary		User profile
//	@Description	Word balance and contact details of the authenticated user
//	@Tags			Users
//	@Produce		json
//	@Param			username	path	string	true	"Username"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/{username} [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if subject, ok := auth.UsernameFromContext(r.Context()); !ok || subject != username {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	user, err := h.authService.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		Username:       user.Username,
		WordsRemaining: user.WordsRemaining,
		ContactHandle:  user.PhoneNumber,
		CreatedAt:      user.CreatedAt,
	})
}
