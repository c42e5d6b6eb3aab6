package piggybankrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	repo := New(mockDB, txManager)
	defer mockDB.Close()

	return repo, mockDB
}

var piggyCols = []string{"id", "user_id", "account_number", "current_amount", "target_amount",
	"auto_saving", "auto_donation", "theme", "saving_count", "donation_count", "donation_total_amount"}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.PiggyBank
	}{
		{
			name: "Piggy bank found",
			mockSetup: func() {
				rows := pgxmock.NewRows(piggyCols).
					AddRow(1, 10, "0016173648919", int64(45730), int64(50000), true, true, domain.ThemePlanet, 12, 0, int64(0))
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(rows)
			},
			result: &domain.PiggyBank{
				ID:            1,
				UserID:        10,
				AccountNumber: "0016173648919",
				CurrentAmount: 45730,
				TargetAmount:  50000,
				AutoSaving:    true,
				AutoDonation:  true,
				Theme:         domain.ThemePlanet,
				SavingCount:   12,
			},
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreditBalance(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Credit applied", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(730), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.CreditBalance(context.Background(), 10, 730)
		assert.NoError(t, err)
	})

	t.Run("Zero rows is not an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(0), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.CreditBalance(context.Background(), 10, 0)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(730), 10).
			WillReturnError(errors.New("database error"))

		err := repo.CreditBalance(context.Background(), 10, 730)
		assert.Error(t, err)
	})
}

func TestRepository_DebitIfEligible(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Debit applied when balance covers it", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(5000), 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		rows, err := repo.DebitIfEligible(context.Background(), 1, 5000)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("Insufficient balance affects no rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(5000), 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		rows, err := repo.DebitIfEligible(context.Background(), 1, 5000)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(5000), 1).
			WillReturnError(errors.New("database error"))

		rows, err := repo.DebitIfEligible(context.Background(), 1, 5000)
		assert.Error(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestRepository_UpdateSettings(t *testing.T) {
	repo, mock := NewMock(t)

	pb := &domain.PiggyBank{
		ID:           1,
		TargetAmount: 50000,
		AutoSaving:   true,
		AutoDonation: true,
		Theme:        domain.ThemePeople,
	}

	t.Run("Settings updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(50000), true, true, "PEOPLE", 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateSettings(context.Background(), pb)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE piggy_banks").
			WithArgs(int64(50000), true, true, "PEOPLE", 1).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateSettings(context.Background(), pb)
		assert.Error(t, err)
	})
}

func TestRepository_FindDonationEligible(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Eligible banks returned", func(t *testing.T) {
		rows := pgxmock.NewRows(piggyCols).
			AddRow(1, 10, "0016173648919", int64(50000), int64(50000), true, true, domain.ThemePlanet, 12, 0, int64(0)).
			AddRow(2, 11, "0016173648920", int64(70000), int64(50000), true, true, domain.ThemePeople, 8, 1, int64(50000))
		mock.ExpectQuery("SELECT").
			WillReturnRows(rows)

		banks, err := repo.FindDonationEligible(context.Background())
		assert.NoError(t, err)
		assert.Len(t, banks, 2)
		assert.Equal(t, domain.ThemePlanet, banks[0].Theme)
		assert.Equal(t, 11, banks[1].UserID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WillReturnError(errors.New("database error"))

		banks, err := repo.FindDonationEligible(context.Background())
		assert.Error(t, err)
		assert.Nil(t, banks)
	})
}
