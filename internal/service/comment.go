package service

import (
	"context"
	"errors"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64, in dto.CreateCommentRequest) (*model.Comment, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}
	if post.BoardType != boardType {
		return nil, ErrPostNotFound
	}

	comment := model.Comment{
		PostID:    postID,
		BoardType: post.BoardType,
		UserID:    userID,
		Content:   in.Content,
	}

	created, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", userID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	return created, nil
}

// FindPostComments builds one page of a post's thread. The full comment set,
// deleted rows included, defines both the total and the slice boundaries: a
// deleted comment still occupies its slot as a tombstone. Replies are fetched
// only for comments on the requested page and are never paginated.
func (s *commentService) FindPostComments(ctx context.Context, postID int64, page int, limit int) (*dto.ThreadResponse, error) {
	if page <= 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}

	comments, err := s.repo.Postgres.Comment.FindByPost(ctx, postID, "")
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments of post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	total := int64(len(comments))
	totalPages := (total + int64(limit) - 1) / int64(limit)

	skip := (page - 1) * limit
	var pageComments []*model.Comment
	if skip < len(comments) {
		end := skip + limit
		if end > len(comments) {
			end = len(comments)
		}
		pageComments = comments[skip:end]
	}

	views := make([]dto.CommentWithReplies, len(pageComments))
	g, gctx := errgroup.WithContext(ctx)
	for i, comment := range pageComments {
		i, comment := i, comment
		g.Go(func() error {
			replies, err := s.repo.Postgres.Reply.FindByComment(gctx, comment.ID)
			if err != nil {
				return err
			}
			views[i] = buildCommentView(comment, replies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Sugar().Errorf("failed to find replies of post(%d) comments: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return &dto.ThreadResponse{
		Comments:    views,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func buildCommentView(comment *model.Comment, replies []*model.Reply) dto.CommentWithReplies {
	replyViews := make([]dto.ReplyInThread, 0, len(replies))
	for _, reply := range replies {
		replyViews = append(replyViews, dto.ReplyInThread{
			ReplyID:   reply.ID,
			UserID:    reply.UserID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
			UpdatedAt: reply.UpdatedAt,
		})
	}

	return dto.CommentWithReplies{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		BoardType: comment.BoardType,
		UserID:    comment.UserID,
		Content:   comment.DisplayContent(),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		DeletedAt: comment.DeletedAt,
		Replies:   replyViews,
	}
}

func (s *commentService) Update(ctx context.Context, userID uuid.UUID, commentID int64, content string) (*model.Comment, error) {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID, false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", commentID, err.Error())
		return nil, ErrInternal
	}

	if comment.UserID != userID {
		return nil, ErrNoPermission
	}

	if err := s.repo.Postgres.Comment.Update(ctx, commentID, content); err != nil {
		s.logger.Sugar().Errorf("failed to update comment(%d): %s", commentID, err.Error())
		return nil, ErrInternal
	}

	comment.Content = content
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, userID uuid.UUID, commentID int64) error {
	comment, err := s.repo.Postgres.Comment.FindByID(ctx, commentID, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCommentNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	if comment.UserID != userID {
		return ErrNoPermission
	}
	if comment.DeletedAt != nil {
		return ErrAlreadyDeleted
	}

	if err := s.repo.Postgres.Comment.SoftDelete(ctx, commentID); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}
