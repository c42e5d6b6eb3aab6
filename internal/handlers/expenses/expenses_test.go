package expenses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/dto"
	expenseservice "github.com/tigglepay/backend/internal/service/expenseservice"
	"github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/split"
	"github.com/tigglepay/backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ExpenseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, url, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateExpense(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Expense created",
			body: `{"total_amount":10001,"participant_ids":[2,3]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreateExpense(gomock.Any(), 1, int64(10001), []int{2, 3}, split.CreatorAbsorbs, false).
					Return(
						&domain.DutchExpense{ID: 5, CreatorID: 1, TotalAmount: 10001, Status: domain.ExpenseRequested},
						[]domain.ExpenseShare{
							{UserID: 1, Amount: 3335, Status: domain.ShareRequested},
							{UserID: 2, Amount: 3333, Status: domain.ShareRequested},
							{UserID: 3, Amount: 3333, Status: domain.ShareRequested},
						}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Distribute policy forwarded",
			body: `{"total_amount":10001,"participant_ids":[2,3],"remainder_policy":"DISTRIBUTE"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreateExpense(gomock.Any(), 1, int64(10001), []int{2, 3}, split.DistributeInOrder, false).
					Return(&domain.DutchExpense{ID: 6, CreatorID: 1}, nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-positive total",
			body: `{"total_amount":0,"participant_ids":[2]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					CreateExpense(gomock.Any(), 1, int64(0), []int{2}, split.CreatorAbsorbs, false).
					Return(nil, nil, split.ErrNonPositiveTotal)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "total amount must be positive",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := authedRequest("POST", "/api/user/expenses", tt.body, 1)
			rr := httptest.NewRecorder()

			handler.CreateExpense(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestPayShare(t *testing.T) {
	tests := []struct {
		name          string
		expenseID     string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Share paid with round-up",
			expenseID: "5",
			body:      `{"round_up":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					PayShare(gomock.Any(), 5, 2, true).
					Return(&domain.ExpenseShare{Status: domain.SharePaid, PaidAmount: 3400, TiggleAmount: 67}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Unknown expense",
			expenseID: "99",
			body:      `{}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					PayShare(gomock.Any(), 99, 2, false).
					Return(nil, expenseservice.ErrExpenseNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "expense not found",
		},
		{
			name:      "Bank rejects the transfer",
			expenseID: "5",
			body:      `{}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					PayShare(gomock.Any(), 5, 2, false).
					Return(nil, expenseservice.ErrTransferFailed)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "peer transfer failed",
		},
		{
			name:          "Invalid expense id",
			expenseID:     "abc",
			body:          `{}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid expense id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := authedRequest("POST", "/api/user/expenses/"+tt.expenseID+"/pay", tt.body, 2)
			req = withURLParam(req, "id", tt.expenseID)
			rr := httptest.NewRecorder()

			handler.PayShare(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetExpense(t *testing.T) {
	t.Run("Expense with shares returned", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().
			GetExpense(gomock.Any(), 5, 2).
			Return(
				&domain.DutchExpense{ID: 5, CreatorID: 1, TotalAmount: 10000, Status: domain.ExpenseCompleted},
				[]domain.ExpenseShare{
					{UserID: 1, Amount: 5000, Status: domain.SharePaid, PaidAmount: 5000},
					{UserID: 2, Amount: 5000, Status: domain.SharePaid, PaidAmount: 5000},
				}, nil)

		req := authedRequest("GET", "/api/user/expenses/5", "", 2)
		req = withURLParam(req, "id", "5")
		rr := httptest.NewRecorder()

		handler.GetExpense(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ExpenseResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 5, resp.ID)
		assert.Len(t, resp.Shares, 2)
		assert.Equal(t, domain.ExpenseCompleted, resp.Status)
	})

	t.Run("Non-member gets not found", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().
			GetExpense(gomock.Any(), 5, 99).
			Return(nil, nil, expenseservice.ErrShareNotFound)

		req := authedRequest("GET", "/api/user/expenses/5", "", 99)
		req = withURLParam(req, "id", "5")
		rr := httptest.NewRecorder()

		handler.GetExpense(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
