package piggybank

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/dto"
	piggybankservice "github.com/tigglepay/backend/internal/service/piggybankservice"
	"github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PiggyBankHandler, *MockService) {
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

func TestGetPiggyBank(t *testing.T) {
	t.Run("Piggy bank returned", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().Get(gomock.Any(), 10).Return(&domain.PiggyBank{
			AccountNumber: "0016173648919",
			CurrentAmount: 45730,
			TargetAmount:  50000,
			AutoSaving:    true,
			Theme:         domain.ThemePlanet,
			SavingCount:   12,
		}, nil)

		req := authedRequest("GET", "/api/user/piggybank", "", 10)
		rr := httptest.NewRecorder()

		handler.GetPiggyBank(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PiggyBankResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(45730), resp.CurrentAmount)
		assert.Equal(t, "PLANET", resp.Theme)
	})

	t.Run("Piggy bank missing", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().Get(gomock.Any(), 10).Return(nil, piggybankservice.ErrPiggyBankNotFound)

		req := authedRequest("GET", "/api/user/piggybank", "", 10)
		rr := httptest.NewRecorder()

		handler.GetPiggyBank(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Settings updated",
			body: `{"target_amount":50000,"auto_donation":true,"theme":"PEOPLE"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					UpdateSettings(gomock.Any(), 10, gomock.Any()).
					DoAndReturn(func(ctx context.Context, userID int, settings piggybankservice.Settings) (*domain.PiggyBank, error) {
						assert.Equal(t, int64(50000), *settings.TargetAmount)
						assert.True(t, *settings.AutoDonation)
						assert.Equal(t, domain.ThemePeople, *settings.Theme)
						assert.Nil(t, settings.AutoSaving)
						return &domain.PiggyBank{TargetAmount: 50000, AutoDonation: true, Theme: domain.ThemePeople}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid theme",
			body: `{"theme":"SPACE"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					UpdateSettings(gomock.Any(), 10, gomock.Any()).
					Return(nil, piggybankservice.ErrInvalidTheme)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid donation theme",
		},
		{
			name: "Non-positive target",
			body: `{"target_amount":0}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					UpdateSettings(gomock.Any(), 10, gomock.Any()).
					Return(nil, piggybankservice.ErrInvalidTarget)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "target amount must be positive",
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

			req := authedRequest("PATCH", "/api/user/piggybank", tt.body, 10)
			rr := httptest.NewRecorder()

			handler.UpdateSettings(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
