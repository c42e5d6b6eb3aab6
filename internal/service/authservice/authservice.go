package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type PiggyBankCreator interface {
	CreateForUser(ctx context.Context, userID int, accountNumber string) (*domain.PiggyBank, error)
}

type Vault interface {
	Encrypt(plaintext string) (string, error)
}

type Service struct {
	userRepo     Repo
	piggyCreator PiggyBankCreator
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	vault        Vault
	bankAPI      bank.API
}

func New(repo Repo, piggyCreator PiggyBankCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, vault Vault, bankAPI bank.API) *Service {
	return &Service{
		userRepo:     repo,
		piggyCreator: piggyCreator,
		hashService:  hashService,
		jwtService:   jwtService,
		vault:        vault,
		bankAPI:      bankAPI,
	}
}

var ErrLoginTaken = errors.New("username already taken")

// Register creates the user with the bank credential encrypted at rest and
// provisions a piggy bank account through the bank API.
func (s *Service) Register(ctx context.Context, login, password, bankCredential, primaryAccount string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	encryptedCredential, err := s.vault.Encrypt(bankCredential)
	if err != nil {
		zap.L().Error("can't encrypt bank credential: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:          login,
		PasswordHash:   hashedPassword,
		BankCredential: encryptedCredential,
		PrimaryAccount: primaryAccount,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	piggyAccount, err := s.bankAPI.CreateAccount(bankCredential)
	if err != nil {
		// The piggy account can be provisioned later; registration stands.
		zap.L().Warn("can't create piggy account", zap.Int("userID", newUser.ID), zap.Error(err))
		piggyAccount = ""
	}
	if _, err := s.piggyCreator.CreateForUser(ctx, newUser.ID, piggyAccount); err != nil {
		zap.L().Error("can't create piggy bank: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
