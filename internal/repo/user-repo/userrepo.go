package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = "id, login, password_hash, bank_credential, primary_account, COALESCE(university_id, 0), donation_ready, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.BankCredential,
		&user.PrimaryAccount, &user.UniversityID, &user.DonationReady, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(repo.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, bank_credential, primary_account)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.BankCredential, user.PrimaryAccount).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AcquireDonationSlot flips donation_ready from true to false in a single
// conditional update. The flag is the per-user settlement lock: exactly one
// concurrent caller observes the flip and may proceed with the withdrawal.
func (repo *Repository) AcquireDonationSlot(ctx context.Context, userID int) (bool, error) {
	query := `
		UPDATE users
		SET donation_ready = FALSE
		WHERE id = $1 AND donation_ready = TRUE
	`
	tag, err := repo.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't acquire donation slot", zap.Int("userID", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseDonationSlotIfEligible restores donation_ready only when the piggy
// bank still satisfies the donation condition. Used to hand the slot back
// after a downstream failure; a bank that lost eligibility stays unflagged.
func (repo *Repository) ReleaseDonationSlotIfEligible(ctx context.Context, userID int) error {
	query := `
		UPDATE users u
		SET donation_ready = TRUE
		FROM piggy_banks p
		WHERE u.id = $1
		  AND p.user_id = u.id
		  AND p.current_amount >= p.target_amount
		  AND p.target_amount > 0
		  AND p.auto_donation = TRUE
		  AND p.theme IS NOT NULL
	`
	_, err := repo.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't release donation slot", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// SetDonationReady recomputes the flag after a settings change or a sweep
// credit; the same eligibility condition guards the flip in both directions.
func (repo *Repository) SetDonationReady(ctx context.Context, userID int) error {
	query := `
		UPDATE users u
		SET donation_ready = EXISTS (
			SELECT 1 FROM piggy_banks p
			WHERE p.user_id = u.id
			  AND p.current_amount >= p.target_amount
			  AND p.target_amount > 0
			  AND p.auto_donation = TRUE
			  AND p.theme IS NOT NULL
		)
		WHERE u.id = $1
	`
	_, err := repo.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't refresh donation_ready", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// FindForSweep returns users with auto-saving enabled whose accounts are
// provisioned, for the weekly spare-change job.
func (repo *Repository) FindForSweep(ctx context.Context, limit uint32) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.primary_account <> ''
		  AND u.bank_credential <> ''
		  AND EXISTS (
			SELECT 1 FROM piggy_banks p
			WHERE p.user_id = u.id AND p.auto_saving = TRUE AND p.account_number <> ''
		  )
		ORDER BY u.id ASC
		LIMIT $1
	`
	rows, err := repo.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get users for sweep", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.BankCredential,
			&user.PrimaryAccount, &user.UniversityID, &user.DonationReady, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row for sweep", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
