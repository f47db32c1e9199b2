package postgres

import (
	"context"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(user_id, board_type, title, content, hospital_names, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		post.UserID,
		post.BoardType,
		post.Title,
		post.Content,
		post.HospitalNames,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`SELECT p.id, p.user_id, p.board_type, p.title, p.content, p.hospital_names,
		p.scrap_counts, p.view_counts, p.like_counts, p.created_at, p.updated_at, p.deleted_at
		FROM posts p
		WHERE p.id = $1 AND p.deleted_at IS NULL`,
		id,
	).Scan(
		&post.ID,
		&post.UserID,
		&post.BoardType,
		&post.Title,
		&post.Content,
		&post.HospitalNames,
		&post.ScrapCounts,
		&post.ViewCounts,
		&post.LikeCounts,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByIDs(ctx context.Context, ids []int64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.user_id, p.board_type, p.title, p.content, p.hospital_names,
		p.scrap_counts, p.view_counts, p.like_counts, p.created_at, p.updated_at, p.deleted_at
		FROM posts p
		WHERE p.id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) FindByBoard(ctx context.Context, boardType model.BoardType, limit int, offset int, sort string) ([]*model.Post, int64, error) {
	orderBy := "p.created_at DESC"
	if sort == "popular" {
		orderBy = "p.like_counts DESC, p.created_at DESC"
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.user_id, p.board_type, p.title, p.content, p.hospital_names,
		p.scrap_counts, p.view_counts, p.like_counts, p.created_at, p.updated_at, p.deleted_at
		FROM posts p
		WHERE p.board_type = $1 AND p.deleted_at IS NULL
		ORDER BY `+orderBy+`
		LIMIT $2
		OFFSET $3`,
		boardType,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM posts p WHERE p.board_type = $1 AND p.deleted_at IS NULL",
		boardType,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepo) Save(ctx context.Context, post *model.Post) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE posts SET board_type = $1, title = $2, content = $3, hospital_names = $4, updated_at = $5
		WHERE id = $6`,
		post.BoardType,
		post.Title,
		post.Content,
		post.HospitalNames,
		post.UpdatedAt,
		post.ID,
	)
	return err
}

func (r *postRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET deleted_at = NOW() WHERE id = $1", id)
	return err
}

func (r *postRepo) IncrViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET view_counts = view_counts + 1 WHERE id = $1", id)
	return err
}

func (r *postRepo) IncrScraps(ctx context.Context, id int64, delta int64) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET scrap_counts = scrap_counts + $1 WHERE id = $2", delta, id)
	return err
}

func scanPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.BoardType,
			&post.Title,
			&post.Content,
			&post.HospitalNames,
			&post.ScrapCounts,
			&post.ViewCounts,
			&post.LikeCounts,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.DeletedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
