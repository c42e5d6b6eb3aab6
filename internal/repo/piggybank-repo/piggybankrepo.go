package piggybankrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const piggyColumns = `id, user_id, account_number, current_amount, target_amount,
		auto_saving, auto_donation, COALESCE(theme, ''), saving_count, donation_count, donation_total_amount`

func scanPiggyBank(row pgx.Row) (*domain.PiggyBank, error) {
	var pb domain.PiggyBank
	err := row.Scan(&pb.ID, &pb.UserID, &pb.AccountNumber, &pb.CurrentAmount, &pb.TargetAmount,
		&pb.AutoSaving, &pb.AutoDonation, &pb.Theme, &pb.SavingCount, &pb.DonationCount, &pb.DonationTotalAmount)
	if err != nil {
		return nil, err
	}
	return &pb, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.PiggyBank, error) {
	query := `SELECT ` + piggyColumns + ` FROM piggy_banks WHERE user_id = $1`
	pb, err := scanPiggyBank(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get piggy bank", zap.Error(err))
		return nil, err
	}
	return pb, nil
}

func (r *Repository) Create(ctx context.Context, userID int, accountNumber string) (*domain.PiggyBank, error) {
	query := `
		INSERT INTO piggy_banks (user_id, account_number)
		VALUES ($1, $2)
		RETURNING ` + piggyColumns + `
	`
	pb, err := scanPiggyBank(r.db.QueryRow(ctx, query, userID, accountNumber))
	if err != nil {
		zap.L().Error("can't create piggy bank", zap.Error(err))
		return nil, err
	}
	return pb, nil
}

// CreditBalance applies a sweep credit as one conditional statement. Business
// code never assigns current_amount directly; this and DebitIfEligible are the
// only writers of the balance.
func (r *Repository) CreditBalance(ctx context.Context, userID int, amount int64) error {
	query := `
		UPDATE piggy_banks
		SET current_amount = current_amount + $1,
		    saving_count = saving_count + 1
		WHERE user_id = $2 AND $1 > 0
	`
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't credit piggy bank", zap.Int("userID", userID), zap.Int64("amount", amount), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Warn("credit affected no rows", zap.Int("userID", userID), zap.Int64("amount", amount))
	}
	return nil
}

// DebitIfEligible withdraws amount only while the balance covers it. Zero rows
// affected means another worker already consumed the balance; the caller must
// treat that as a lost race, never retry the debit.
func (r *Repository) DebitIfEligible(ctx context.Context, piggyBankID int, amount int64) (int64, error) {
	query := `
		UPDATE piggy_banks
		SET current_amount = current_amount - $1,
		    donation_count = donation_count + 1,
		    donation_total_amount = donation_total_amount + $1
		WHERE id = $2 AND current_amount >= $1 AND $1 > 0
	`
	tag, err := r.db.Exec(ctx, query, amount, piggyBankID)
	if err != nil {
		zap.L().Error("can't debit piggy bank", zap.Int("piggyBankID", piggyBankID), zap.Int64("amount", amount), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateSettings(ctx context.Context, pb *domain.PiggyBank) error {
	query := `
		UPDATE piggy_banks
		SET target_amount = $1, auto_saving = $2, auto_donation = $3, theme = NULLIF($4, '')
		WHERE id = $5
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, pb.TargetAmount, pb.AutoSaving, pb.AutoDonation, string(pb.Theme), pb.ID)
		if err != nil {
			zap.L().Error("can't update piggy bank settings", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindDonationEligible lists piggy banks whose owner currently holds the
// donation_ready flag, joined with the owner's university.
func (r *Repository) FindDonationEligible(ctx context.Context) ([]domain.PiggyBank, error) {
	query := `
		SELECT p.id, p.user_id, p.account_number, p.current_amount, p.target_amount,
		       p.auto_saving, p.auto_donation, COALESCE(p.theme, ''), p.saving_count,
		       p.donation_count, p.donation_total_amount
		FROM piggy_banks p
		JOIN users u ON u.id = p.user_id
		WHERE u.donation_ready = TRUE
		ORDER BY p.id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get donation-eligible piggy banks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var banks []domain.PiggyBank
	for rows.Next() {
		var pb domain.PiggyBank
		err := rows.Scan(&pb.ID, &pb.UserID, &pb.AccountNumber, &pb.CurrentAmount, &pb.TargetAmount,
			&pb.AutoSaving, &pb.AutoDonation, &pb.Theme, &pb.SavingCount, &pb.DonationCount, &pb.DonationTotalAmount)
		if err != nil {
			zap.L().Error("can't scan piggy bank row", zap.Error(err))
			return nil, err
		}
		banks = append(banks, pb)
	}
	return banks, nil
}
