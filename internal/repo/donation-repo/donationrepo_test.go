package donationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tigglepay/backend/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateRecord(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	record := &domain.DonationRecord{
		UserID:       10,
		UniversityID: 2,
		Theme:        domain.ThemePlanet,
		Amount:       50000,
		RunID:        "8a9b1c2d",
		CreatedAt:    createdAt,
	}

	t.Run("Record inserted", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO donation_records").
			WithArgs(10, 2, "PLANET", int64(50000), "8a9b1c2d", createdAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		saved, err := repo.CreateRecord(context.Background(), record)
		assert.NoError(t, err)
		assert.Equal(t, 1, saved.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO donation_records").
			WithArgs(10, 2, "PLANET", int64(50000), "8a9b1c2d", createdAt).
			WillReturnError(errors.New("database error"))

		saved, err := repo.CreateRecord(context.Background(), record)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_GetRecordsByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	cols := []string{"id", "user_id", "university_id", "theme", "amount", "run_id", "created_at"}

	t.Run("Records returned newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(cols).
			AddRow(2, 10, 2, domain.ThemePlanet, int64(50000), "run-2", createdAt).
			AddRow(1, 10, 2, domain.ThemePeople, int64(30000), "run-1", createdAt.AddDate(0, 0, -7))
		mock.ExpectQuery("SELECT").
			WithArgs(10).
			WillReturnRows(rows)

		records, err := repo.GetRecordsByUserID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "run-2", records[0].RunID)
		assert.Equal(t, domain.ThemePeople, records[1].Theme)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(10).
			WillReturnError(errors.New("database error"))

		records, err := repo.GetRecordsByUserID(context.Background(), 10)
		assert.Error(t, err)
		assert.Nil(t, records)
	})
}
