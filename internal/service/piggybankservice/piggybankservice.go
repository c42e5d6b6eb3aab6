package piggybankservice

import (
	"context"
	"errors"

	"github.com/tigglepay/backend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=piggybankservice.go -destination=piggybankservice_mock.go -package=piggybankservice

type PiggyBankRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.PiggyBank, error)
	Create(ctx context.Context, userID int, accountNumber string) (*domain.PiggyBank, error)
	UpdateSettings(ctx context.Context, pb *domain.PiggyBank) error
}

type UserRepo interface {
	SetDonationReady(ctx context.Context, userID int) error
}

type Service struct {
	piggyRepo PiggyBankRepo
	userRepo  UserRepo
}

func New(piggyRepo PiggyBankRepo, userRepo UserRepo) *Service {
	return &Service{
		piggyRepo: piggyRepo,
		userRepo:  userRepo,
	}
}

var (
	ErrPiggyBankNotFound = errors.New("piggy bank not found")
	ErrInvalidTheme      = errors.New("invalid donation theme")
	ErrInvalidTarget     = errors.New("target amount must be positive")
)

func (s *Service) Get(ctx context.Context, userID int) (*domain.PiggyBank, error) {
	pb, err := s.piggyRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get piggy bank", zap.Error(err))
		return nil, err
	}
	if pb == nil {
		return nil, ErrPiggyBankNotFound
	}
	return pb, nil
}

func (s *Service) CreateForUser(ctx context.Context, userID int, accountNumber string) (*domain.PiggyBank, error) {
	pb, err := s.piggyRepo.Create(ctx, userID, accountNumber)
	if err != nil {
		zap.L().Error("failed to create piggy bank", zap.Error(err))
		return nil, err
	}
	return pb, nil
}

// Settings carries the mutable piggy bank configuration; nil fields are left
// untouched.
type Settings struct {
	TargetAmount *int64
	AutoSaving   *bool
	AutoDonation *bool
	Theme        *domain.Theme
}

// UpdateSettings applies the change and recomputes the owner's donation_ready
// flag, so a bank that just crossed its target becomes eligible without
// waiting for the next sweep.
func (s *Service) UpdateSettings(ctx context.Context, userID int, settings Settings) (*domain.PiggyBank, error) {
	pb, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings.TargetAmount != nil {
		if *settings.TargetAmount <= 0 {
			return nil, ErrInvalidTarget
		}
		pb.TargetAmount = *settings.TargetAmount
	}
	if settings.AutoSaving != nil {
		pb.AutoSaving = *settings.AutoSaving
	}
	if settings.AutoDonation != nil {
		pb.AutoDonation = *settings.AutoDonation
	}
	if settings.Theme != nil {
		if *settings.Theme != "" && !settings.Theme.Valid() {
			return nil, ErrInvalidTheme
		}
		pb.Theme = *settings.Theme
	}

	if err := s.piggyRepo.UpdateSettings(ctx, pb); err != nil {
		zap.L().Error("failed to update piggy bank settings", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.SetDonationReady(ctx, userID); err != nil {
		zap.L().Error("failed to refresh donation readiness", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, userID)
}
