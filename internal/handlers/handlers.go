package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/GlebRadaev/wordpay/docs"
	cbqueue "github.com/GlebRadaev/wordpay/internal/callback"
	callbackhandlers "github.com/GlebRadaev/wordpay/internal/handlers/callback"
	paymenthandlers "github.com/GlebRadaev/wordpay/internal/handlers/payments"
	userhandlers "github.com/GlebRadaev/wordpay/internal/handlers/users"
	wordshandlers "github.com/GlebRadaev/wordpay/internal/handlers/words"
	"github.com/GlebRadaev/wordpay/internal/service"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/GlebRadaev/wordpay/pkg/utils"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Initiate(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Plans(w http.ResponseWriter, r *http.Request)
}

type CallbackHandler interface {
	Callback(w http.ResponseWriter, r *http.Request)
}

type WordsHandler interface {
	Consume(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	UserHandler     UserHandler
	PaymentHandler  PaymentHandler
	CallbackHandler CallbackHandler
	WordsHandler    WordsHandler

	jwtService auth.JWTServiceInterface
	db         Pinger
}

// New builds the handlers. queue may be nil, in which case callbacks are
// settled within the request.
func New(s *service.Services, jwtService auth.JWTServiceInterface, db Pinger, queue cbqueue.QueueI, callbackSecret string) *Handlers {
	return &Handlers{
		UserHandler:     userhandlers.New(s.AuthService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		CallbackHandler: callbackhandlers.New(s.PaymentService, queue, callbackSecret),
		WordsHandler:    wordshandlers.New(s.LedgerService),
		jwtService:      jwtService,
		db:              db,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)
	r.Get("/plans", h.PaymentHandler.Plans)

	r.Route("/payments", func(r chi.Router) {
		r.Post("/initiate", h.PaymentHandler.Initiate)
		r.Post("/callback", h.CallbackHandler.Callback)
		r.Get("/{correlationID}/status", h.PaymentHandler.Status)
	})
	r.Post("/words/consume", h.WordsHandler.Consume)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.UserHandler.Register)
		r.Post("/login", h.UserHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/{username}", h.UserHandler.Profile)
			r.Get("/{username}/payments", h.PaymentHandler.History)
		})
	})

	return r
}

// InitCallbackRoutes serves only the provider callback, for the dedicated
// callback listener.
func (h *Handlers) InitCallbackRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Post("/payments/callback", h.CallbackHandler.Callback)
	return r
}

// Health godoc
//
//	@Summary	Service health
//	@Tags		Service
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			zap.L().Error("database ping failed", zap.Error(err))
			utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "database": "unreachable"})
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
}
