package sweep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/pkg/tag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=sweep.go -destination=sweep_mock.go -package=sweep

// sweepUnit is the amount boundary: everything below the nearest 1000 on the
// primary account moves to the piggy bank.
const sweepUnit = 1000

var processingUsers sync.Map

type UserRepo interface {
	FindForSweep(ctx context.Context, limit uint32) ([]domain.User, error)
	SetDonationReady(ctx context.Context, userID int) error
}

type PiggyBankRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.PiggyBank, error)
	CreditBalance(ctx context.Context, userID int, amount int64) error
}

type Vault interface {
	Decrypt(ciphertext string) (string, error)
}

// Service is the weekly spare-change sweep. Each eligible user is one
// isolated unit of work; a unit's failure is logged and never aborts the
// batch. Duplicate protection is the history-based idempotency tag, so an
// accidental second run in the same week issues zero transfers.
type Service struct {
	userRepo   UserRepo
	piggyRepo  PiggyBankRepo
	bankAPI    bank.API
	vault      Vault
	limit      uint32
	workerPool WorkerPoolI
}

func New(userRepo UserRepo, piggyRepo PiggyBankRepo, bankAPI bank.API, vault Vault) *Service {
	return &Service{
		userRepo:   userRepo,
		piggyRepo:  piggyRepo,
		bankAPI:    bankAPI,
		vault:      vault,
		limit:      1000,
		workerPool: NewWorkerPool(10),
	}
}

// Run executes one scheduled sweep invocation.
func (s *Service) Run(ctx context.Context) {
	zap.L().Info("spare-change sweep started")

	users, err := s.userRepo.FindForSweep(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch users for sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, user := range users {
		user := user

		if _, loaded := processingUsers.LoadOrStore(user.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingUsers.Delete(user.ID)
				return s.sweepUser(ctx, user)
			})
			if err != nil {
				processingUsers.Delete(user.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching sweep units", zap.Error(err))
	}
}

// sweepUser runs the per-user state machine: eligibility → idempotency check →
// balance inquiry → transfer → ledger credit. Local state is only touched
// after the external transfer reports success.
func (s *Service) sweepUser(ctx context.Context, user domain.User) error {
	pb, err := s.piggyRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load piggy bank for user %d: %w", user.ID, err)
	}
	if pb == nil || !pb.AutoSaving || pb.AccountNumber == "" || user.PrimaryAccount == "" {
		zap.L().Debug("user not eligible for sweep", zap.Int("userID", user.ID))
		return nil
	}

	credential, err := s.vault.Decrypt(user.BankCredential)
	if err != nil {
		return fmt.Errorf("failed to decrypt credential for user %d: %w", user.ID, err)
	}

	now := time.Now()
	period := tag.PeriodTag(now)

	done, err := s.alreadySwept(user.ID, credential, pb.AccountNumber, period, now)
	if err != nil {
		return err
	}
	if done {
		zap.L().Info("sweep already completed this period", zap.Int("userID", user.ID), zap.String("period", period))
		return nil
	}

	balance, err := s.bankAPI.InquireBalance(credential, user.PrimaryAccount)
	if err != nil {
		return fmt.Errorf("balance inquiry failed for user %d: %w", user.ID, err)
	}

	amount := balance % sweepUnit
	if amount <= 0 {
		zap.L().Info("nothing to sweep", zap.Int("userID", user.ID), zap.Int64("balance", balance))
		return nil
	}

	marker := tag.Encode(tag.KindSweep, user.ID, period)
	result, err := s.bankAPI.Transfer(credential, pb.AccountNumber, marker, amount, user.PrimaryAccount, marker)
	if err != nil {
		return fmt.Errorf("sweep transfer failed for user %d (amount %d, account %s): %w",
			user.ID, amount, user.PrimaryAccount, err)
	}
	if !result.Success {
		return fmt.Errorf("sweep transfer rejected for user %d (amount %d, account %s): %s",
			user.ID, amount, user.PrimaryAccount, result.Message)
	}

	if err := s.piggyRepo.CreditBalance(ctx, user.ID, amount); err != nil {
		return fmt.Errorf("ledger credit failed for user %d after successful transfer: %w", user.ID, err)
	}
	if err := s.userRepo.SetDonationReady(ctx, user.ID); err != nil {
		zap.L().Warn("can't refresh donation readiness", zap.Int("userID", user.ID), zap.Error(err))
	}

	zap.L().Info("sweep completed", zap.Int("userID", user.ID), zap.Int64("amount", amount), zap.String("period", period))
	return nil
}

// alreadySwept checks the piggy account's credit history for this period's
// idempotency marker. Best effort: the remote system is non-transactional, so
// this guards against re-runs, not against every race.
func (s *Service) alreadySwept(userID int, credential, piggyAccount, period string, now time.Time) (bool, error) {
	history, err := s.bankAPI.InquireTransactionHistory(
		credential, piggyAccount, period, now.Format("2006-01-02"), bank.HistoryCredits, bank.OrderDesc)
	if err != nil {
		return false, fmt.Errorf("history inquiry failed for user %d: %w", userID, err)
	}
	for _, rec := range history {
		if tag.Matches(tag.Record{Summary: rec.Summary, Memo: rec.Memo}, tag.KindSweep, userID, period) {
			return true, nil
		}
	}
	return false, nil
}
