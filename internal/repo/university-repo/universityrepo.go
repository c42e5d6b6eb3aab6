package universityrepo

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

func (r *Repository) GetByID(ctx context.Context, universityID int) (*domain.University, error) {
	query := `
		SELECT id, name, planet_account, people_account, progress_account
		FROM universities
		WHERE id = $1
	`
	var u domain.University
	err := r.db.QueryRow(ctx, query, universityID).Scan(&u.ID, &u.Name, &u.PlanetAccount, &u.PeopleAccount, &u.ProgressAccount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find university", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

// UniversityOfUser resolves the owning university of a piggy bank holder.
func (r *Repository) UniversityOfUser(ctx context.Context, userID int) (*domain.University, error) {
	query := `
		SELECT un.id, un.name, un.planet_account, un.people_account, un.progress_account
		FROM universities un
		JOIN users u ON u.university_id = un.id
		WHERE u.id = $1
	`
	var u domain.University
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Name, &u.PlanetAccount, &u.PeopleAccount, &u.ProgressAccount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't resolve university of user", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return &u, nil
}
