package handlers

import (
	"net/http"

	_ "github.com/tigglepay/backend/docs"
	authhandlers "github.com/tigglepay/backend/internal/handlers/auth"
	expensehandlers "github.com/tigglepay/backend/internal/handlers/expenses"
	piggybankhandlers "github.com/tigglepay/backend/internal/handlers/piggybank"
	"github.com/tigglepay/backend/internal/service"
	"github.com/tigglepay/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandler interface {
	CreateExpense(w http.ResponseWriter, r *http.Request)
	PayShare(w http.ResponseWriter, r *http.Request)
	GetExpense(w http.ResponseWriter, r *http.Request)
}

type PiggyBankHandler interface {
	GetPiggyBank(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	ExpenseHandler   ExpenseHandler
	PiggyBankHandler PiggyBankHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		ExpenseHandler:   expensehandlers.New(s.ExpenseService),
		PiggyBankHandler: piggybankhandlers.New(s.PiggyBankService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", h.ExpenseHandler.CreateExpense)
				r.Get("/{id}", h.ExpenseHandler.GetExpense)
				r.Post("/{id}/pay", h.ExpenseHandler.PayShare)
			})
			r.Route("/piggybank", func(r chi.Router) {
				r.Get("/", h.PiggyBankHandler.GetPiggyBank)
				r.Patch("/", h.PiggyBankHandler.UpdateSettings)
			})
		})
	})

	return r
}
