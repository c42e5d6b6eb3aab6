package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/pkg/tag"
	"go.uber.org/zap"
)

//go:generate mockgen -source=donation.go -destination=donation_mock.go -package=donation

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	AcquireDonationSlot(ctx context.Context, userID int) (bool, error)
	ReleaseDonationSlotIfEligible(ctx context.Context, userID int) error
}

type PiggyBankRepo interface {
	FindDonationEligible(ctx context.Context) ([]domain.PiggyBank, error)
	GetByUserID(ctx context.Context, userID int) (*domain.PiggyBank, error)
	DebitIfEligible(ctx context.Context, piggyBankID int, amount int64) (int64, error)
}

type UniversityRepo interface {
	UniversityOfUser(ctx context.Context, userID int) (*domain.University, error)
}

type DonationRepo interface {
	CreateRecord(ctx context.Context, record *domain.DonationRecord) (*domain.DonationRecord, error)
}

type Vault interface {
	Decrypt(ciphertext string) (string, error)
}

// Config identifies the settlement account the consolidated per-theme
// transfers are issued from.
type Config struct {
	SettlementAccount    string
	SettlementCredential string
	AuditDir             string
}

// Service is the periodic donation settlement. The per-user donation_ready
// flag, flipped by a single conditional update, is the lock that keeps the
// withdrawal path at-most-once per user even under overlapping runs.
type Service struct {
	userRepo       UserRepo
	piggyRepo      PiggyBankRepo
	universityRepo UniversityRepo
	donationRepo   DonationRepo
	bankAPI        bank.API
	vault          Vault
	cfg            Config
}

func New(userRepo UserRepo, piggyRepo PiggyBankRepo, universityRepo UniversityRepo, donationRepo DonationRepo, bankAPI bank.API, vault Vault, cfg Config) *Service {
	return &Service{
		userRepo:       userRepo,
		piggyRepo:      piggyRepo,
		universityRepo: universityRepo,
		donationRepo:   donationRepo,
		bankAPI:        bankAPI,
		vault:          vault,
		cfg:            cfg,
	}
}

// Run executes one scheduled donation settlement invocation.
func (s *Service) Run(ctx context.Context) {
	if s.cfg.SettlementAccount == "" || s.cfg.SettlementCredential == "" {
		zap.L().Error("donation settlement aborted: settlement account or credential not configured")
		return
	}

	banks, err := s.piggyRepo.FindDonationEligible(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch donation-eligible piggy banks", zap.Error(err))
		return
	}
	if len(banks) == 0 {
		zap.L().Info("no donation-eligible piggy banks this run")
		return
	}

	runID := uuid.NewString()
	zap.L().Info("donation settlement started", zap.String("runID", runID), zap.Int("eligible", len(banks)))

	byUniversity := make(map[int][]domain.PiggyBank)
	universities := make(map[int]*domain.University)
	for _, pb := range banks {
		univ, err := s.universityRepo.UniversityOfUser(ctx, pb.UserID)
		if err != nil || univ == nil {
			zap.L().Warn("skipping piggy bank without resolvable university",
				zap.Int("userID", pb.UserID), zap.Error(err))
			continue
		}
		byUniversity[univ.ID] = append(byUniversity[univ.ID], pb)
		universities[univ.ID] = univ
	}

	for univID, univBanks := range byUniversity {
		s.settleUniversity(ctx, universities[univID], univBanks, runID)
	}

	zap.L().Info("donation settlement finished", zap.String("runID", runID))
}

// settleUniversity processes every eligible piggy bank of one university and
// then issues one consolidated transfer per theme. Per-bank and per-theme
// failures never abort the rest of the loop.
func (s *Service) settleUniversity(ctx context.Context, univ *domain.University, banks []domain.PiggyBank, runID string) {
	audit, err := openAuditFile(s.cfg.AuditDir, univ.ID, runID)
	if err != nil {
		zap.L().Error("can't open audit file, continuing without it",
			zap.Int("universityID", univ.ID), zap.Error(err))
	}
	defer audit.Close()

	audit.Line("run %s university=%d name=%q banks=%d", runID, univ.ID, univ.Name, len(banks))

	totals := make(map[domain.Theme]int64)
	for _, pb := range banks {
		theme, amount, ok := s.settleBank(ctx, pb, univ, runID, audit)
		if ok {
			totals[theme] += amount
		}
	}

	for theme, total := range totals {
		if total <= 0 {
			continue
		}
		s.transferThemeTotal(univ, theme, total, runID, audit)
	}
}

// settleBank runs the slot protocol for one piggy bank: acquire → re-check →
// decrypt → withdraw → debit → record. Any failure after acquisition hands the
// slot back through the eligibility-guarded release, except the stale re-check
// where the slot is already consumed.
func (s *Service) settleBank(ctx context.Context, pb domain.PiggyBank, univ *domain.University, runID string, audit *auditFile) (domain.Theme, int64, bool) {
	acquired, err := s.userRepo.AcquireDonationSlot(ctx, pb.UserID)
	if err != nil {
		zap.L().Error("slot acquire failed", zap.Int("userID", pb.UserID), zap.Error(err))
		return "", 0, false
	}
	if !acquired {
		audit.Line("user=%d skipped: slot already taken", pb.UserID)
		return "", 0, false
	}

	fresh, err := s.piggyRepo.GetByUserID(ctx, pb.UserID)
	if err != nil || fresh == nil || fresh.TargetAmount <= 0 || fresh.CurrentAmount < fresh.TargetAmount {
		// The slot is consumed; the balance no longer covers the target, so
		// there is nothing to undo.
		audit.Line("user=%d skipped: no longer eligible", pb.UserID)
		return "", 0, false
	}
	target := fresh.TargetAmount
	theme := fresh.Theme

	user, err := s.userRepo.FindByID(ctx, pb.UserID)
	if err != nil || user == nil {
		s.releaseSlot(ctx, pb.UserID)
		audit.Line("user=%d skipped: user lookup failed", pb.UserID)
		return "", 0, false
	}

	credential, err := s.vault.Decrypt(user.BankCredential)
	if err != nil {
		s.releaseSlot(ctx, pb.UserID)
		zap.L().Error("credential decrypt failed", zap.Int("userID", pb.UserID), zap.Error(err))
		audit.Line("user=%d skipped: credential decrypt failed", pb.UserID)
		return "", 0, false
	}

	memo := tag.Encode(tag.KindDonate, pb.UserID, tag.PeriodTag(time.Now()))
	result, err := s.bankAPI.Withdraw(credential, fresh.AccountNumber, target, memo)
	if err != nil || !result.Success {
		s.releaseSlot(ctx, pb.UserID)
		reason := result.Message
		if err != nil {
			reason = err.Error()
		}
		zap.L().Error("withdrawal failed",
			zap.Int("userID", pb.UserID), zap.Int64("amount", target),
			zap.String("account", fresh.AccountNumber), zap.String("reason", reason))
		audit.Line("user=%d skipped: withdrawal failed: %s", pb.UserID, reason)
		return "", 0, false
	}

	rows, err := s.piggyRepo.DebitIfEligible(ctx, fresh.ID, target)
	if err != nil || rows == 0 {
		s.releaseSlot(ctx, pb.UserID)
		// The external withdrawal already happened; this needs a human.
		zap.L().Error("RECONCILIATION REQUIRED: withdrawal succeeded but local debit affected no rows",
			zap.Int("userID", pb.UserID), zap.Int("piggyBankID", fresh.ID),
			zap.Int64("amount", target), zap.Error(err))
		audit.Line("user=%d INCONSISTENT: withdrew %d externally but local debit failed", pb.UserID, target)
		return "", 0, false
	}

	record := &domain.DonationRecord{
		UserID:       pb.UserID,
		UniversityID: univ.ID,
		Theme:        theme,
		Amount:       target,
		RunID:        runID,
		CreatedAt:    time.Now(),
	}
	if _, err := s.donationRepo.CreateRecord(ctx, record); err != nil {
		zap.L().Warn("can't persist donation record", zap.Int("userID", pb.UserID), zap.Error(err))
	}

	audit.Line("user=%d donated %d theme=%s", pb.UserID, target, theme)
	return theme, target, true
}

func (s *Service) transferThemeTotal(univ *domain.University, theme domain.Theme, total int64, runID string, audit *auditFile) {
	account := univ.ThemeAccount(theme)
	if account == "" {
		zap.L().Error("university has no account for theme",
			zap.Int("universityID", univ.ID), zap.String("theme", string(theme)))
		audit.Line("theme=%s FAILED: no university account configured (total %d held)", theme, total)
		return
	}

	memo := fmt.Sprintf("DONATION|%s|%s", theme, runID)
	result, err := s.bankAPI.Transfer(s.cfg.SettlementCredential, account, memo, total, s.cfg.SettlementAccount, memo)
	if err != nil || !result.Success {
		reason := result.Message
		if err != nil {
			reason = err.Error()
		}
		zap.L().Error("consolidated theme transfer failed",
			zap.Int("universityID", univ.ID), zap.String("theme", string(theme)),
			zap.Int64("total", total), zap.String("reason", reason))
		audit.Line("theme=%s FAILED: %s (total %d)", theme, reason, total)
		return
	}

	audit.Line("theme=%s transferred %d to %s", theme, total, account)
	zap.L().Info("theme donation settled",
		zap.Int("universityID", univ.ID), zap.String("theme", string(theme)), zap.Int64("total", total))
}

func (s *Service) releaseSlot(ctx context.Context, userID int) {
	if err := s.userRepo.ReleaseDonationSlotIfEligible(ctx, userID); err != nil {
		zap.L().Error("can't release donation slot", zap.Int("userID", userID), zap.Error(err))
	}
}
