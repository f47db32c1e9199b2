package postgres

import (
	"context"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*model.Post, error)
	FindByBoard(ctx context.Context, boardType model.BoardType, limit int, offset int, sort string) ([]*model.Post, int64, error)
	Save(ctx context.Context, post *model.Post) error
	SoftDelete(ctx context.Context, id int64) error
	IncrViews(ctx context.Context, id int64) error
	IncrScraps(ctx context.Context, id int64, delta int64) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	// FindByID looks a comment up by primary key. With includeDeleted the
	// lookup also matches soft-deleted rows.
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*model.Comment, error)
	// FindByPost returns every comment of a post, soft-deleted rows included,
	// oldest first. An empty boardType means no board filter.
	FindByPost(ctx context.Context, postID int64, boardType model.BoardType) ([]*model.Comment, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	Update(ctx context.Context, id int64, content string) error
	// UpdateBoardByPost rewrites the denormalized board_type on every comment
	// of a post, deleted rows included, after the post moves boards.
	UpdateBoardByPost(ctx context.Context, postID int64, boardType model.BoardType) error
	SoftDelete(ctx context.Context, id int64) error
}

type Reply interface {
	Create(ctx context.Context, reply model.Reply) (*model.Reply, error)
	FindByID(ctx context.Context, id int64) (*model.Reply, error)
	// FindByComment returns the comment's non-deleted replies, oldest first.
	FindByComment(ctx context.Context, commentID int64) ([]*model.Reply, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Reply, error)
	// CountByPost counts non-deleted replies under all comments of a post.
	CountByPost(ctx context.Context, postID int64) (int64, error)
	Update(ctx context.Context, id int64, content string) error
	SoftDelete(ctx context.Context, id int64) error
}

type Scrap interface {
	Create(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error)
	// FindByUserAndPost matches soft-deleted scraps too, so an unscrapped
	// post can be rescrapped by restoring the original row.
	FindByUserAndPost(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit int, offset int, sort string) ([]*model.ScrapedPost, int64, error)
	Restore(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64) error
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Post
	Comment
	Reply
	Scrap
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:      newPostRepo(db),
		Comment:   newCommentRepo(db),
		Reply:     newReplyRepo(db),
		Scrap:     newScrapRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}
