package repo

import (
	"github.com/tigglepay/backend/internal/pg"
	donationrepo "github.com/tigglepay/backend/internal/repo/donation-repo"
	expenserepo "github.com/tigglepay/backend/internal/repo/expense-repo"
	piggybankrepo "github.com/tigglepay/backend/internal/repo/piggybank-repo"
	universityrepo "github.com/tigglepay/backend/internal/repo/university-repo"
	userrepo "github.com/tigglepay/backend/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	PiggyBankRepo  *piggybankrepo.Repository
	UniversityRepo *universityrepo.Repository
	ExpenseRepo    *expenserepo.Repository
	DonationRepo   *donationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		PiggyBankRepo:  piggybankrepo.New(conn, txManager),
		UniversityRepo: universityrepo.New(conn),
		ExpenseRepo:    expenserepo.New(conn, txManager),
		DonationRepo:   donationrepo.New(conn),
	}
}
