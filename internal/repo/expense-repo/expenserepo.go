package expenserepo

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

// CreateWithShares persists the expense and every share in one transaction so
// a partially-created split can never be observed.
func (r *Repository) CreateWithShares(ctx context.Context, expense *domain.DutchExpense, shares []domain.ExpenseShare) error {
	expenseQuery := `
		INSERT INTO dutch_expenses (creator_id, total_amount, status, rounded_per_person, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	shareQuery := `
		INSERT INTO expense_shares (expense_id, user_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, expenseQuery,
			expense.CreatorID, expense.TotalAmount, expense.Status, expense.RoundedPerPerson, expense.CreatedAt).
			Scan(&expense.ID)
		if err != nil {
			zap.L().Error("can't save expense", zap.Error(err))
			return err
		}
		for i := range shares {
			shares[i].ExpenseID = expense.ID
			err := r.db.QueryRow(ctx, shareQuery,
				shares[i].ExpenseID, shares[i].UserID, shares[i].Amount, shares[i].Status).
				Scan(&shares[i].ID)
			if err != nil {
				zap.L().Error("can't save expense share", zap.Error(err))
				return err
			}
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, expenseID int) (*domain.DutchExpense, error) {
	query := `
		SELECT id, creator_id, total_amount, status, rounded_per_person, created_at
		FROM dutch_expenses
		WHERE id = $1
	`
	var expense domain.DutchExpense
	err := r.db.QueryRow(ctx, query, expenseID).
		Scan(&expense.ID, &expense.CreatorID, &expense.TotalAmount, &expense.Status, &expense.RoundedPerPerson, &expense.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find expense", zap.Error(err))
		return nil, err
	}
	return &expense, nil
}

func (r *Repository) FindShare(ctx context.Context, expenseID, userID int) (*domain.ExpenseShare, error) {
	query := `
		SELECT id, expense_id, user_id, amount, status, tiggle_amount, paid_amount
		FROM expense_shares
		WHERE expense_id = $1 AND user_id = $2
	`
	var share domain.ExpenseShare
	err := r.db.QueryRow(ctx, query, expenseID, userID).
		Scan(&share.ID, &share.ExpenseID, &share.UserID, &share.Amount, &share.Status, &share.TiggleAmount, &share.PaidAmount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find expense share", zap.Error(err))
		return nil, err
	}
	return &share, nil
}

func (r *Repository) FindShares(ctx context.Context, expenseID int) ([]domain.ExpenseShare, error) {
	query := `
		SELECT id, expense_id, user_id, amount, status, tiggle_amount, paid_amount
		FROM expense_shares
		WHERE expense_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, expenseID)
	if err != nil {
		zap.L().Error("can't get expense shares", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shares []domain.ExpenseShare
	for rows.Next() {
		var share domain.ExpenseShare
		err := rows.Scan(&share.ID, &share.ExpenseID, &share.UserID, &share.Amount, &share.Status, &share.TiggleAmount, &share.PaidAmount)
		if err != nil {
			zap.L().Error("can't scan expense share row", zap.Error(err))
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// MarkSharePaid is the only forward transition a share has. The status guard
// makes a repeated settlement a no-op: zero rows means the share was already
// paid by a concurrent call.
func (r *Repository) MarkSharePaid(ctx context.Context, shareID int, tiggleAmount, paidAmount int64) (int64, error) {
	query := `
		UPDATE expense_shares
		SET status = $1, tiggle_amount = $2, paid_amount = $3
		WHERE id = $4 AND status = $5
	`
	tag, err := r.db.Exec(ctx, query, domain.SharePaid, tiggleAmount, paidAmount, shareID, domain.ShareRequested)
	if err != nil {
		zap.L().Error("can't mark share paid", zap.Int("shareID", shareID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CompleteIfAllPaid flips the expense to COMPLETED once no REQUESTED share
// remains. Forward-only and idempotent under concurrent payers.
func (r *Repository) CompleteIfAllPaid(ctx context.Context, expenseID int) (bool, error) {
	query := `
		UPDATE dutch_expenses
		SET status = $1
		WHERE id = $2 AND status = $3
		  AND NOT EXISTS (
			SELECT 1 FROM expense_shares
			WHERE expense_id = $2 AND status = $4
		  )
	`
	tag, err := r.db.Exec(ctx, query, domain.ExpenseCompleted, expenseID, domain.ExpenseRequested, domain.ShareRequested)
	if err != nil {
		zap.L().Error("can't complete expense", zap.Int("expenseID", expenseID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
