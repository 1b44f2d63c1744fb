package repo

import (
	"github.com/GlebRadaev/wordpay/internal/pg"
	paymentrepo "github.com/GlebRadaev/wordpay/internal/repo/payment-repo"
	transactionrepo "github.com/GlebRadaev/wordpay/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/wordpay/internal/repo/user-repo"
	"github.com/GlebRadaev/wordpay/internal/service/authservice"
	"github.com/GlebRadaev/wordpay/internal/service/ledgerservice"
	"github.com/GlebRadaev/wordpay/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	LedgerRepo      ledgerservice.Repo
	TransactionRepo paymentservice.TransactionRepo
	PaymentRepo     paymentservice.PaymentRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		LedgerRepo:      userRepo,
		TransactionRepo: transactionrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
	}
}
