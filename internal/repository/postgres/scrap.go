package postgres

import (
	"context"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type scrapRepo struct {
	db *pgxpool.Pool
}

func newScrapRepo(db *pgxpool.Pool) Scrap {
	return &scrapRepo{
		db: db,
	}
}

func (r *scrapRepo) Create(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error) {
	scrap := model.Scrap{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO scraps(user_id, post_id, created_at) VALUES($1, $2, $3) RETURNING id",
		scrap.UserID,
		scrap.PostID,
		scrap.CreatedAt,
	).Scan(&scrap.ID); err != nil {
		return nil, err
	}

	return &scrap, nil
}

func (r *scrapRepo) FindByUserAndPost(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error) {
	var scrap model.Scrap
	if err := r.db.QueryRow(
		ctx,
		`SELECT s.id, s.user_id, s.post_id, s.created_at, s.deleted_at
		FROM scraps s
		WHERE s.user_id = $1 AND s.post_id = $2`,
		userID,
		postID,
	).Scan(
		&scrap.ID,
		&scrap.UserID,
		&scrap.PostID,
		&scrap.CreatedAt,
		&scrap.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &scrap, nil
}

func (r *scrapRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit int, offset int, sort string) ([]*model.ScrapedPost, int64, error) {
	orderBy := "s.created_at DESC"
	if sort == "popular" {
		orderBy = "p.like_counts DESC, s.created_at DESC"
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.user_id, s.post_id, s.created_at, s.deleted_at,
		p.id, p.user_id, p.board_type, p.title, p.content, p.hospital_names,
		p.scrap_counts, p.view_counts, p.like_counts, p.created_at, p.updated_at, p.deleted_at
		FROM scraps s
		JOIN posts p ON s.post_id = p.id
		WHERE s.user_id = $1 AND s.deleted_at IS NULL AND p.deleted_at IS NULL
		ORDER BY `+orderBy+`
		LIMIT $2
		OFFSET $3`,
		userID,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var scraps []*model.ScrapedPost
	for rows.Next() {
		var sp model.ScrapedPost
		if err := rows.Scan(
			&sp.Scrap.ID,
			&sp.Scrap.UserID,
			&sp.Scrap.PostID,
			&sp.Scrap.CreatedAt,
			&sp.Scrap.DeletedAt,
			&sp.Post.ID,
			&sp.Post.UserID,
			&sp.Post.BoardType,
			&sp.Post.Title,
			&sp.Post.Content,
			&sp.Post.HospitalNames,
			&sp.Post.ScrapCounts,
			&sp.Post.ViewCounts,
			&sp.Post.LikeCounts,
			&sp.Post.CreatedAt,
			&sp.Post.UpdatedAt,
			&sp.Post.DeletedAt,
		); err != nil {
			return nil, 0, err
		}

		scraps = append(scraps, &sp)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*)
		FROM scraps s
		JOIN posts p ON s.post_id = p.id
		WHERE s.user_id = $1 AND s.deleted_at IS NULL AND p.deleted_at IS NULL`,
		userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return scraps, total, nil
}

func (r *scrapRepo) Restore(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE scraps SET deleted_at = NULL WHERE id = $1", id)
	return err
}

func (r *scrapRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE scraps SET deleted_at = NOW() WHERE id = $1", id)
	return err
}
