package postgres

import (
	"context"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type replyRepo struct {
	db *pgxpool.Pool
}

func newReplyRepo(db *pgxpool.Pool) Reply {
	return &replyRepo{
		db: db,
	}
}

func (r *replyRepo) Create(ctx context.Context, reply model.Reply) (*model.Reply, error) {
	now := time.Now()
	reply.CreatedAt = now
	reply.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO replies(comment_id, user_id, content, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id`,
		reply.CommentID,
		reply.UserID,
		reply.Content,
		reply.CreatedAt,
		reply.UpdatedAt,
	).Scan(&reply.ID); err != nil {
		return nil, err
	}

	return &reply, nil
}

func (r *replyRepo) FindByID(ctx context.Context, id int64) (*model.Reply, error) {
	var reply model.Reply
	if err := r.db.QueryRow(
		ctx,
		`SELECT r.id, r.comment_id, r.user_id, r.content, r.created_at, r.updated_at, r.deleted_at
		FROM replies r
		WHERE r.id = $1 AND r.deleted_at IS NULL`,
		id,
	).Scan(
		&reply.ID,
		&reply.CommentID,
		&reply.UserID,
		&reply.Content,
		&reply.CreatedAt,
		&reply.UpdatedAt,
		&reply.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &reply, nil
}

func (r *replyRepo) FindByComment(ctx context.Context, commentID int64) ([]*model.Reply, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT r.id, r.comment_id, r.user_id, r.content, r.created_at, r.updated_at, r.deleted_at
		FROM replies r
		WHERE r.comment_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.created_at ASC`,
		commentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReplies(rows)
}

func (r *replyRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Reply, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT r.id, r.comment_id, r.user_id, r.content, r.created_at, r.updated_at, r.deleted_at
		FROM replies r
		WHERE r.user_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReplies(rows)
}

func (r *replyRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*)
		FROM replies r
		JOIN comments c ON r.comment_id = c.id
		WHERE c.post_id = $1 AND r.deleted_at IS NULL`,
		postID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *replyRepo) Update(ctx context.Context, id int64, content string) error {
	_, err := r.db.Exec(ctx, "UPDATE replies SET content = $1, updated_at = NOW() WHERE id = $2", content, id)
	return err
}

func (r *replyRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE replies SET deleted_at = NOW() WHERE id = $1", id)
	return err
}

func scanReplies(rows pgx.Rows) ([]*model.Reply, error) {
	var replies []*model.Reply
	for rows.Next() {
		var reply model.Reply
		if err := rows.Scan(
			&reply.ID,
			&reply.CommentID,
			&reply.UserID,
			&reply.Content,
			&reply.CreatedAt,
			&reply.UpdatedAt,
			&reply.DeletedAt,
		); err != nil {
			return nil, err
		}

		replies = append(replies, &reply)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return replies, nil
}
