package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/tigglepay/backend/docs"
	"github.com/tigglepay/backend/internal/handlers/auth"
	"github.com/tigglepay/backend/internal/handlers/expenses"
	"github.com/tigglepay/backend/internal/handlers/piggybank"
	"github.com/tigglepay/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		ExpenseService:   expenses.NewMockService(ctrl),
		PiggyBankService: piggybank.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockExpenseHandler := NewMockExpenseHandler(ctrl)
	mockPiggyBankHandler := NewMockPiggyBankHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().GetExpense(gomock.Any(), gomock.Any()).AnyTimes()
	mockExpenseHandler.EXPECT().PayShare(gomock.Any(), gomock.Any()).AnyTimes()
	mockPiggyBankHandler.EXPECT().GetPiggyBank(gomock.Any(), gomock.Any()).AnyTimes()
	mockPiggyBankHandler.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		ExpenseHandler:   mockExpenseHandler,
		PiggyBankHandler: mockPiggyBankHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/expenses/", http.StatusUnauthorized},
		{"GET", "/api/user/expenses/1", http.StatusUnauthorized},
		{"POST", "/api/user/expenses/1/pay", http.StatusUnauthorized},
		{"GET", "/api/user/piggybank/", http.StatusUnauthorized},
		{"PATCH", "/api/user/piggybank/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
