package postgres

import (
	"context"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userCacheRepo struct {
	db *pgxpool.Pool
}

func newUserCacheRepo(db *pgxpool.Pool) UserCache {
	return &userCacheRepo{
		db: db,
	}
}

func (r *userCacheRepo) Create(ctx context.Context, cachedUser model.CachedUser) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO cached_users(id, nickname, email, is_admin) VALUES($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET nickname = $2, email = $3, is_admin = $4`,
		cachedUser.ID,
		cachedUser.Nickname,
		cachedUser.Email,
		cachedUser.IsAdmin,
	)
	return err
}

func (r *userCacheRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	var user model.CachedUser
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.nickname, u.email, u.is_admin FROM cached_users u WHERE u.id = $1",
		id,
	).Scan(
		&user.ID,
		&user.Nickname,
		&user.Email,
		&user.IsAdmin,
	); err != nil {
		return nil, err
	}

	return &user, nil
}
