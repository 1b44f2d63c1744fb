package service

import (
	callbackhandlers "github.com/GlebRadaev/wordpay/internal/handlers/callback"
	paymenthandlers "github.com/GlebRadaev/wordpay/internal/handlers/payments"
	userhandlers "github.com/GlebRadaev/wordpay/internal/handlers/users"
	wordshandlers "github.com/GlebRadaev/wordpay/internal/handlers/words"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"github.com/GlebRadaev/wordpay/internal/plans"
	"github.com/GlebRadaev/wordpay/internal/repo"
	"github.com/GlebRadaev/wordpay/internal/service/authservice"
	"github.com/GlebRadaev/wordpay/internal/service/ledgerservice"
	"github.com/GlebRadaev/wordpay/internal/service/paymentservice"
	pkgauth "github.com/GlebRadaev/wordpay/pkg/auth"
)

// PaymentService serves both the client-facing payment routes and the
// provider callback.
type PaymentService interface {
	paymenthandlers.Service
	callbackhandlers.Service
}

type Services struct {
	AuthService    userhandlers.Service
	LedgerService  wordshandlers.Service
	PaymentService PaymentService
}

func New(repo *repo.Repositories, txManager pg.TXManager, gateway paymentservice.Gateway, jwtService pkgauth.JWTServiceInterface, callbackURL string) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	paymentService := paymentservice.New(
		repo.TransactionRepo,
		repo.PaymentRepo,
		ledgerService,
		gateway,
		txManager,
		plans.Default(),
		callbackURL,
	)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		PaymentService: paymentService,
	}
}
