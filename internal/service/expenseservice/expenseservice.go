package expenseservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/pkg/split"
	"go.uber.org/zap"
)

//go:generate mockgen -source=expenseservice.go -destination=expenseservice_mock.go -package=expenseservice

type ExpenseRepo interface {
	CreateWithShares(ctx context.Context, expense *domain.DutchExpense, shares []domain.ExpenseShare) error
	FindByID(ctx context.Context, expenseID int) (*domain.DutchExpense, error)
	FindShare(ctx context.Context, expenseID, userID int) (*domain.ExpenseShare, error)
	FindShares(ctx context.Context, expenseID int) ([]domain.ExpenseShare, error)
	MarkSharePaid(ctx context.Context, shareID int, tiggleAmount, paidAmount int64) (int64, error)
	CompleteIfAllPaid(ctx context.Context, expenseID int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	SetDonationReady(ctx context.Context, userID int) error
}

type PiggyBankRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.PiggyBank, error)
	CreditBalance(ctx context.Context, userID int, amount int64) error
}

type Vault interface {
	Decrypt(ciphertext string) (string, error)
}

type Service struct {
	expenseRepo ExpenseRepo
	userRepo    UserRepo
	piggyRepo   PiggyBankRepo
	bankAPI     bank.API
	vault       Vault
}

func New(expenseRepo ExpenseRepo, userRepo UserRepo, piggyRepo PiggyBankRepo, bankAPI bank.API, vault Vault) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		piggyRepo:   piggyRepo,
		bankAPI:     bankAPI,
		vault:       vault,
	}
}

var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrShareNotFound       = errors.New("share not found")
	ErrDuplicateCreator    = errors.New("creator cannot be listed as a participant")
	ErrTransferFailed      = errors.New("peer transfer failed")
	ErrParticipantNotFound = errors.New("participant not found")
)

// CreateExpense splits total among the creator and participantIDs and stores
// the expense with one REQUESTED share per person. When roundUp is set the
// expense records the per-person rounded cap used later to bound top-ups.
func (s *Service) CreateExpense(ctx context.Context, creatorID int, total int64, participantIDs []int, policy split.RemainderPolicy, roundUp bool) (*domain.DutchExpense, []domain.ExpenseShare, error) {
	participants := dedupe(participantIDs)
	for _, id := range participants {
		if id == creatorID {
			return nil, nil, ErrDuplicateCreator
		}
	}
	for _, id := range participants {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if user == nil {
			return nil, nil, ErrParticipantNotFound
		}
	}

	amounts, err := split.Even(total, len(participants), policy)
	if err != nil {
		return nil, nil, err
	}

	expense := &domain.DutchExpense{
		CreatorID:   creatorID,
		TotalAmount: total,
		Status:      domain.ExpenseRequested,
		CreatedAt:   time.Now(),
	}
	if roundUp {
		maxShare := amounts[0]
		for _, a := range amounts[1:] {
			if a > maxShare {
				maxShare = a
			}
		}
		expense.RoundedPerPerson, _ = split.RoundUpTo100(maxShare)
	}

	shares := make([]domain.ExpenseShare, 0, len(amounts))
	members := append([]int{creatorID}, participants...)
	for i, userID := range members {
		shares = append(shares, domain.ExpenseShare{
			UserID: userID,
			Amount: amounts[i],
			Status: domain.ShareRequested,
		})
	}

	if err := s.expenseRepo.CreateWithShares(ctx, expense, shares); err != nil {
		zap.L().Error("can't create expense", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("expense created",
		zap.Int("expenseID", expense.ID),
		zap.Int64("total", total),
		zap.Int("members", len(members)))
	return expense, shares, nil
}

// PayShare settles one participant's obligation:
//
//  1. an already PAID share is a no-op, no transfer is re-issued;
//  2. the creator holds the funds already, so only a top-up may run for them;
//  3. a participant's principal moves primary→creator in one external call,
//     and a failure there leaves the share REQUESTED for a later retry;
//  4. the round-up top-up is best-effort — its failure never fails the payment;
//  5. the PAID flip is conditional, and the expense completes once every
//     share is paid.
func (s *Service) PayShare(ctx context.Context, expenseID, payerID int, roundUp bool) (*domain.ExpenseShare, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	share, err := s.expenseRepo.FindShare(ctx, expenseID, payerID)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}
	if share.Status == domain.SharePaid {
		zap.L().Info("share already paid", zap.Int("expenseID", expenseID), zap.Int("userID", payerID))
		return share, nil
	}

	topUp := int64(0)
	if roundUp {
		_, topUp = split.RoundUpTo100(share.Amount)
		if expense.RoundedPerPerson > 0 && share.Amount+topUp > expense.RoundedPerPerson {
			topUp = expense.RoundedPerPerson - share.Amount
			if topUp < 0 {
				topUp = 0
			}
		}
	}

	payer, err := s.userRepo.FindByID(ctx, payerID)
	if err != nil {
		return nil, err
	}
	credential, err := s.vault.Decrypt(payer.BankCredential)
	if err != nil {
		zap.L().Error("can't decrypt payer credential", zap.Int("userID", payerID), zap.Error(err))
		return nil, err
	}

	if payerID != expense.CreatorID {
		if err := s.transferPrincipal(ctx, expense, share, payer, credential); err != nil {
			return nil, err
		}
	}

	if topUp > 0 {
		if err := s.settleTopUp(ctx, expense, share, payer, credential, topUp); err != nil {
			zap.L().Warn("top-up failed, settling share without tiggle",
				zap.Int("expenseID", expenseID), zap.Int("userID", payerID), zap.Error(err))
			topUp = 0
		}
	}

	rows, err := s.expenseRepo.MarkSharePaid(ctx, share.ID, topUp, share.Amount+topUp)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost the PAID race to a concurrent call for the same share.
		zap.L().Info("share settled concurrently", zap.Int("shareID", share.ID))
		return s.expenseRepo.FindShare(ctx, expenseID, payerID)
	}
	share.Status = domain.SharePaid
	share.TiggleAmount = topUp
	share.PaidAmount = share.Amount + topUp

	completed, err := s.expenseRepo.CompleteIfAllPaid(ctx, expenseID)
	if err != nil {
		zap.L().Error("can't check expense completion", zap.Int("expenseID", expenseID), zap.Error(err))
		return share, nil
	}
	if completed {
		zap.L().Info("expense completed", zap.Int("expenseID", expenseID))
	}

	return share, nil
}

func (s *Service) transferPrincipal(ctx context.Context, expense *domain.DutchExpense, share *domain.ExpenseShare, payer *domain.User, credential string) error {
	creator, err := s.userRepo.FindByID(ctx, expense.CreatorID)
	if err != nil {
		return err
	}
	memo := fmt.Sprintf("DUTCH|e%d|u%d", expense.ID, payer.ID)
	result, err := s.bankAPI.Transfer(credential, creator.PrimaryAccount, memo, share.Amount, payer.PrimaryAccount, memo)
	if err != nil {
		zap.L().Error("peer transfer call failed",
			zap.Int("expenseID", expense.ID), zap.Int("userID", payer.ID),
			zap.Int64("amount", share.Amount), zap.Error(err))
		return err
	}
	if !result.Success {
		zap.L().Error("peer transfer rejected",
			zap.Int("expenseID", expense.ID), zap.Int("userID", payer.ID),
			zap.Int64("amount", share.Amount), zap.String("message", result.Message))
		return ErrTransferFailed
	}
	return nil
}

func (s *Service) settleTopUp(ctx context.Context, expense *domain.DutchExpense, share *domain.ExpenseShare, payer *domain.User, credential string, topUp int64) error {
	pb, err := s.piggyRepo.GetByUserID(ctx, payer.ID)
	if err != nil {
		return err
	}
	if pb == nil || pb.AccountNumber == "" {
		return errors.New("no piggy account to receive top-up")
	}

	memo := fmt.Sprintf("TIGGLE|e%d|u%d", expense.ID, payer.ID)
	result, err := s.bankAPI.Transfer(credential, pb.AccountNumber, memo, topUp, payer.PrimaryAccount, memo)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("top-up transfer rejected: %s", result.Message)
	}

	if err := s.piggyRepo.CreditBalance(ctx, payer.ID, topUp); err != nil {
		return err
	}
	if err := s.userRepo.SetDonationReady(ctx, payer.ID); err != nil {
		zap.L().Warn("can't refresh donation readiness after top-up", zap.Int("userID", payer.ID), zap.Error(err))
	}
	return nil
}

// GetExpense returns the expense with its shares; only members may see it.
func (s *Service) GetExpense(ctx context.Context, expenseID, userID int) (*domain.DutchExpense, []domain.ExpenseShare, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	if expense == nil {
		return nil, nil, ErrExpenseNotFound
	}

	shares, err := s.expenseRepo.FindShares(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}

	member := false
	for _, share := range shares {
		if share.UserID == userID {
			member = true
			break
		}
	}
	if !member {
		return nil, nil, ErrShareNotFound
	}

	return expense, shares, nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
