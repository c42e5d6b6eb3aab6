package service

import (
	"github.com/tigglepay/backend/internal/handlers/auth"
	"github.com/tigglepay/backend/internal/handlers/expenses"
	"github.com/tigglepay/backend/internal/handlers/piggybank"

	pkgauth "github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/vault"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/repo"
	authservice "github.com/tigglepay/backend/internal/service/authservice"
	expenseservice "github.com/tigglepay/backend/internal/service/expenseservice"
	piggybankservice "github.com/tigglepay/backend/internal/service/piggybankservice"
)

type Services struct {
	AuthService      auth.Service
	ExpenseService   expenses.Service
	PiggyBankService piggybank.Service
}

func New(repo *repo.Repositories, bankAPI bank.API, credVault *vault.Vault) *Services {
	piggyBankService := piggybankservice.New(repo.PiggyBankRepo, repo.UserRepo)
	expenseService := expenseservice.New(repo.ExpenseRepo, repo.UserRepo, repo.PiggyBankRepo, bankAPI, credVault)
	authService := authservice.New(repo.UserRepo, piggyBankService, &pkgauth.HashService{}, &pkgauth.JWTService{}, credVault, bankAPI)

	return &Services{
		AuthService:      authService,
		ExpenseService:   expenseService,
		PiggyBankService: piggyBankService,
	}
}
