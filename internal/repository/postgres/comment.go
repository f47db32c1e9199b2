package postgres

import (
	"context"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments(post_id, board_type, user_id, content, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		comment.PostID,
		comment.BoardType,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.Comment, error) {
	query := `SELECT c.id, c.post_id, c.board_type, c.user_id, c.content, c.created_at, c.updated_at, c.deleted_at
	FROM comments c
	WHERE c.id = $1`
	if !includeDeleted {
		query += " AND c.deleted_at IS NULL"
	}

	var comment model.Comment
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.BoardType,
		&comment.UserID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByPost(ctx context.Context, postID int64, boardType model.BoardType) ([]*model.Comment, error) {
	query := `SELECT c.id, c.post_id, c.board_type, c.user_id, c.content, c.created_at, c.updated_at, c.deleted_at
	FROM comments c
	WHERE c.post_id = $1`
	args := []any{postID}

	if boardType != "" {
		query += " AND c.board_type = $2"
		args = append(args, boardType)
	}

	query += " ORDER BY c.created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *commentRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT c.id, c.post_id, c.board_type, c.user_id, c.content, c.created_at, c.updated_at, c.deleted_at
		FROM comments c
		WHERE c.user_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *commentRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM comments c WHERE c.post_id = $1 AND c.deleted_at IS NULL",
		postID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *commentRepo) Update(ctx context.Context, id int64, content string) error {
	_, err := r.db.Exec(ctx, "UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2", content, id)
	return err
}

func (r *commentRepo) UpdateBoardByPost(ctx context.Context, postID int64, boardType model.BoardType) error {
	_, err := r.db.Exec(ctx, "UPDATE comments SET board_type = $1 WHERE post_id = $2", boardType, postID)
	return err
}

func (r *commentRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE comments SET deleted_at = NOW() WHERE id = $1", id)
	return err
}

func scanComments(rows pgx.Rows) ([]*model.Comment, error) {
	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.BoardType,
			&comment.UserID,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.DeletedAt,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
