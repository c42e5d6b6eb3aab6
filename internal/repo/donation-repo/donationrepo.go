package donationrepo

import (
	"context"

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

// CreateRecord appends one settled donation to the audit trail. Records are
// never updated or deleted.
func (r *Repository) CreateRecord(ctx context.Context, record *domain.DonationRecord) (*domain.DonationRecord, error) {
	query := `
		INSERT INTO donation_records (user_id, university_id, theme, amount, run_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		record.UserID, record.UniversityID, string(record.Theme), record.Amount, record.RunID, record.CreatedAt).
		Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save donation record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) GetRecordsByUserID(ctx context.Context, userID int) ([]domain.DonationRecord, error) {
	query := `
		SELECT id, user_id, university_id, theme, amount, run_id, created_at
		FROM donation_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch donation records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.DonationRecord
	for rows.Next() {
		var rec domain.DonationRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.UniversityID, &rec.Theme, &rec.Amount, &rec.RunID, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan donation record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
