package service

import (
	"context"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sort tokens accepted by listing operations. Anything other than "popular"
// falls back to latest ordering.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

type Post interface {
	FindByBoard(ctx context.Context, boardType model.BoardType, page int, limit int, sort string) (*dto.PaginatedResponse[dto.PostListItem], error)
	Create(ctx context.Context, user model.CachedUser, boardType model.BoardType, in dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, boardType model.BoardType, postID int64) (*dto.PostDetail, error)
	Update(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64, in dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64) error
	CountCommentsAndReplies(ctx context.Context, postID int64) (int64, error)
}

type Comment interface {
	Create(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64, in dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, page int, limit int) (*dto.ThreadResponse, error)
	Update(ctx context.Context, userID uuid.UUID, commentID int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, userID uuid.UUID, commentID int64) error
}

type Reply interface {
	Create(ctx context.Context, userID uuid.UUID, commentID int64, in dto.CreateReplyRequest) (*model.Reply, error)
	FindCommentReplies(ctx context.Context, commentID int64) ([]*model.Reply, error)
	Update(ctx context.Context, userID uuid.UUID, replyID int64, content string) (*model.Reply, error)
	Delete(ctx context.Context, userID uuid.UUID, replyID int64) error
}

type Timeline interface {
	FetchMyCommentsAndReplies(ctx context.Context, userID uuid.UUID, page int, limit int, sort string) (*dto.PaginatedResponse[model.TimelineEntry], error)
}

type Scrap interface {
	ScrapPost(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error)
	UnscrapPost(ctx context.Context, userID uuid.UUID, postID int64) error
	FindMyScraps(ctx context.Context, userID uuid.UUID, page int, limit int, sort string) (*dto.PaginatedResponse[dto.ScrapItem], error)
}

type UserCache interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	Sync(ctx context.Context, user model.CachedUser) (*model.CachedUser, error)
	ExtendSession(ctx context.Context, sessionID string) error
}

type Service struct {
	Post
	Comment
	Reply
	Timeline
	Scrap
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post:      newPostService(logger, repo),
		Comment:   newCommentService(logger, repo),
		Reply:     newReplyService(logger, repo),
		Timeline:  newTimelineService(logger, repo),
		Scrap:     newScrapService(logger, repo),
		UserCache: newUserCacheService(logger, repo),
	}
}
