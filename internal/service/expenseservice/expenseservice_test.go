package expenseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/pkg/split"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	expenseRepo *MockExpenseRepo
	userRepo    *MockUserRepo
	piggyRepo   *MockPiggyBankRepo
	bankAPI     *bank.MockAPI
	vault       *MockVault
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		expenseRepo: NewMockExpenseRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		piggyRepo:   NewMockPiggyBankRepo(ctrl),
		bankAPI:     bank.NewMockAPI(ctrl),
		vault:       NewMockVault(ctrl),
	}
	service := New(m.expenseRepo, m.userRepo, m.piggyRepo, m.bankAPI, m.vault)
	defer ctrl.Finish()
	return service, m
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Creator absorbs the remainder", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 3).Return(&domain.User{ID: 3}, nil)
		m.expenseRepo.EXPECT().CreateWithShares(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, expense *domain.DutchExpense, shares []domain.ExpenseShare) error {
				expense.ID = 5
				return nil
			})

		expense, shares, err := service.CreateExpense(ctx, 1, 10001, []int{2, 3}, split.CreatorAbsorbs, false)
		assert.NoError(t, err)
		assert.Equal(t, 5, expense.ID)
		assert.Len(t, shares, 3)
		assert.Equal(t, 1, shares[0].UserID)
		assert.Equal(t, int64(3335), shares[0].Amount)
		assert.Equal(t, int64(3333), shares[1].Amount)
		assert.Equal(t, int64(3333), shares[2].Amount)
	})

	t.Run("Round-up records the per-person cap", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)
		m.expenseRepo.EXPECT().CreateWithShares(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, expense *domain.DutchExpense, shares []domain.ExpenseShare) error {
				assert.Equal(t, int64(3400), expense.RoundedPerPerson)
				return nil
			})

		_, _, err := service.CreateExpense(ctx, 1, 6601, []int{2}, split.CreatorAbsorbs, true)
		assert.NoError(t, err)
	})

	t.Run("Duplicate participants collapse", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)
		m.expenseRepo.EXPECT().CreateWithShares(ctx, gomock.Any(), gomock.Any()).Return(nil)

		_, shares, err := service.CreateExpense(ctx, 1, 10000, []int{2, 2, 2}, split.CreatorAbsorbs, false)
		assert.NoError(t, err)
		assert.Len(t, shares, 2)
		assert.Equal(t, int64(5000), shares[0].Amount)
	})

	t.Run("Creator listed as participant", func(t *testing.T) {
		service, _ := NewMock(t)

		_, _, err := service.CreateExpense(ctx, 1, 10000, []int{1, 2}, split.CreatorAbsorbs, false)
		assert.ErrorIs(t, err, ErrDuplicateCreator)
	})

	t.Run("Unknown participant", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)

		_, _, err := service.CreateExpense(ctx, 1, 10000, []int{2}, split.CreatorAbsorbs, false)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("Non-positive total", func(t *testing.T) {
		service, m := NewMock(t)

		m.userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2}, nil)

		_, _, err := service.CreateExpense(ctx, 1, 0, []int{2}, split.CreatorAbsorbs, false)
		assert.ErrorIs(t, err, split.ErrNonPositiveTotal)
	})
}

func TestPayShare(t *testing.T) {
	ctx := context.Background()

	expense := &domain.DutchExpense{ID: 5, CreatorID: 1, TotalAmount: 10000, Status: domain.ExpenseRequested}
	payer := &domain.User{ID: 2, BankCredential: "enc", PrimaryAccount: "79927398713"}
	creator := &domain.User{ID: 1, PrimaryAccount: "49927398716"}

	t.Run("Participant pays their share", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(
			&domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 2).Return(payer, nil)
		m.vault.EXPECT().Decrypt("enc").Return("api-key", nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(creator, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "49927398716", gomock.Any(), int64(3333), "79927398713", gomock.Any()).
			Return(bank.Result{Success: true}, nil)
		m.expenseRepo.EXPECT().MarkSharePaid(ctx, 10, int64(0), int64(3333)).Return(int64(1), nil)
		m.expenseRepo.EXPECT().CompleteIfAllPaid(ctx, 5).Return(false, nil)

		share, err := service.PayShare(ctx, 5, 2, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.SharePaid, share.Status)
		assert.Equal(t, int64(3333), share.PaidAmount)
	})

	t.Run("Paying twice is a no-op", func(t *testing.T) {
		service, m := NewMock(t)

		paid := &domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.SharePaid, PaidAmount: 3333}
		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(paid, nil)

		share, err := service.PayShare(ctx, 5, 2, false)
		assert.NoError(t, err)
		assert.Equal(t, paid, share)
	})

	t.Run("Transfer failure leaves the share REQUESTED", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(
			&domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 2).Return(payer, nil)
		m.vault.EXPECT().Decrypt("enc").Return("api-key", nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(creator, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "49927398716", gomock.Any(), int64(3333), "79927398713", gomock.Any()).
			Return(bank.Result{Success: false, Message: "insufficient funds"}, nil)

		share, err := service.PayShare(ctx, 5, 2, false)
		assert.ErrorIs(t, err, ErrTransferFailed)
		assert.Nil(t, share)
	})

	t.Run("Round-up tops up the piggy bank", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(
			&domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 2).Return(payer, nil)
		m.vault.EXPECT().Decrypt("enc").Return("api-key", nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(creator, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "49927398716", gomock.Any(), int64(3333), "79927398713", gomock.Any()).
			Return(bank.Result{Success: true}, nil)
		m.piggyRepo.EXPECT().GetByUserID(ctx, 2).Return(&domain.PiggyBank{ID: 2, UserID: 2, AccountNumber: "0016173648919"}, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "0016173648919", gomock.Any(), int64(67), "79927398713", gomock.Any()).
			Return(bank.Result{Success: true}, nil)
		m.piggyRepo.EXPECT().CreditBalance(ctx, 2, int64(67)).Return(nil)
		m.userRepo.EXPECT().SetDonationReady(ctx, 2).Return(nil)
		m.expenseRepo.EXPECT().MarkSharePaid(ctx, 10, int64(67), int64(3400)).Return(int64(1), nil)
		m.expenseRepo.EXPECT().CompleteIfAllPaid(ctx, 5).Return(true, nil)

		share, err := service.PayShare(ctx, 5, 2, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(67), share.TiggleAmount)
		assert.Equal(t, int64(3400), share.PaidAmount)
	})

	t.Run("Top-up failure never fails the payment", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(
			&domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 2).Return(payer, nil)
		m.vault.EXPECT().Decrypt("enc").Return("api-key", nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(creator, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "49927398716", gomock.Any(), int64(3333), "79927398713", gomock.Any()).
			Return(bank.Result{Success: true}, nil)
		m.piggyRepo.EXPECT().GetByUserID(ctx, 2).Return(&domain.PiggyBank{ID: 2, UserID: 2, AccountNumber: "0016173648919"}, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "0016173648919", gomock.Any(), int64(67), "79927398713", gomock.Any()).
			Return(bank.Result{}, errors.New("bank unavailable"))
		m.expenseRepo.EXPECT().MarkSharePaid(ctx, 10, int64(0), int64(3333)).Return(int64(1), nil)
		m.expenseRepo.EXPECT().CompleteIfAllPaid(ctx, 5).Return(false, nil)

		share, err := service.PayShare(ctx, 5, 2, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), share.TiggleAmount)
		assert.Equal(t, int64(3333), share.PaidAmount)
	})

	t.Run("Creator settles without a peer transfer", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 1).Return(
			&domain.ExpenseShare{ID: 9, ExpenseID: 5, UserID: 1, Amount: 3334, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, BankCredential: "enc1", PrimaryAccount: "49927398716"}, nil)
		m.vault.EXPECT().Decrypt("enc1").Return("creator-key", nil)
		m.expenseRepo.EXPECT().MarkSharePaid(ctx, 9, int64(0), int64(3334)).Return(int64(1), nil)
		m.expenseRepo.EXPECT().CompleteIfAllPaid(ctx, 5).Return(false, nil)

		share, err := service.PayShare(ctx, 5, 1, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.SharePaid, share.Status)
	})

	t.Run("Lost PAID race returns the concurrent result", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(
			&domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.ShareRequested}, nil)
		m.userRepo.EXPECT().FindByID(ctx, 2).Return(payer, nil)
		m.vault.EXPECT().Decrypt("enc").Return("api-key", nil)
		m.userRepo.EXPECT().FindByID(ctx, 1).Return(creator, nil)
		m.bankAPI.EXPECT().Transfer("api-key", "49927398716", gomock.Any(), int64(3333), "79927398713", gomock.Any()).
			Return(bank.Result{Success: true}, nil)
		m.expenseRepo.EXPECT().MarkSharePaid(ctx, 10, int64(0), int64(3333)).Return(int64(0), nil)
		settled := &domain.ExpenseShare{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333, Status: domain.SharePaid, PaidAmount: 3333}
		m.expenseRepo.EXPECT().FindShare(ctx, 5, 2).Return(settled, nil)

		share, err := service.PayShare(ctx, 5, 2, false)
		assert.NoError(t, err)
		assert.Equal(t, settled, share)
	})

	t.Run("Unknown expense", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		share, err := service.PayShare(ctx, 99, 2, false)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
		assert.Nil(t, share)
	})
}

func TestGetExpense(t *testing.T) {
	ctx := context.Background()
	expense := &domain.DutchExpense{ID: 5, CreatorID: 1}
	shares := []domain.ExpenseShare{
		{ID: 9, ExpenseID: 5, UserID: 1, Amount: 3334},
		{ID: 10, ExpenseID: 5, UserID: 2, Amount: 3333},
	}

	t.Run("Member sees the expense", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShares(ctx, 5).Return(shares, nil)

		got, gotShares, err := service.GetExpense(ctx, 5, 2)
		assert.NoError(t, err)
		assert.Equal(t, expense, got)
		assert.Equal(t, shares, gotShares)
	})

	t.Run("Non-member is rejected", func(t *testing.T) {
		service, m := NewMock(t)

		m.expenseRepo.EXPECT().FindByID(ctx, 5).Return(expense, nil)
		m.expenseRepo.EXPECT().FindShares(ctx, 5).Return(shares, nil)

		_, _, err := service.GetExpense(ctx, 5, 99)
		assert.ErrorIs(t, err, ErrShareNotFound)
	})
}
