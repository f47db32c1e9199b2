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
)

type replyService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newReplyService(logger *zap.Logger, repo *repository.Repository) Reply {
	return &replyService{
		logger: logger,
		repo:   repo,
	}
}

func (s *replyService) Create(ctx context.Context, userID uuid.UUID, commentID int64, in dto.CreateReplyRequest) (*model.Reply, error) {
	// New replies need a visible parent; existing replies stay visible even
	// after their parent comment is tombstoned.
	if _, err := s.repo.Postgres.Comment.FindByID(ctx, commentID, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", commentID, err.Error())
		return nil, ErrInternal
	}

	reply := model.Reply{
		CommentID: commentID,
		UserID:    userID,
		Content:   in.Content,
	}

	created, err := s.repo.Postgres.Reply.Create(ctx, reply)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) reply on comment(%d): %s", userID.String(), commentID, err.Error())
		return nil, ErrInternal
	}

	return created, nil
}

func (s *replyService) FindCommentReplies(ctx context.Context, commentID int64) ([]*model.Reply, error) {
	replies, err := s.repo.Postgres.Reply.FindByComment(ctx, commentID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find replies of comment(%d): %s", commentID, err.Error())
		return nil, ErrInternal
	}

	return replies, nil
}

func (s *replyService) Update(ctx context.Context, userID uuid.UUID, replyID int64, content string) (*model.Reply, error) {
	reply, err := s.repo.Postgres.Reply.FindByID(ctx, replyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReplyNotFound
		}
		s.logger.Sugar().Errorf("failed to find reply(%d): %s", replyID, err.Error())
		return nil, ErrInternal
	}

	if reply.UserID != userID {
		return nil, ErrNoPermission
	}

	if err := s.repo.Postgres.Reply.Update(ctx, replyID, content); err != nil {
		s.logger.Sugar().Errorf("failed to update reply(%d): %s", replyID, err.Error())
		return nil, ErrInternal
	}

	reply.Content = content
	return reply, nil
}

func (s *replyService) Delete(ctx context.Context, userID uuid.UUID, replyID int64) error {
	reply, err := s.repo.Postgres.Reply.FindByID(ctx, replyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReplyNotFound
		}
		s.logger.Sugar().Errorf("failed to find reply(%d): %s", replyID, err.Error())
		return ErrInternal
	}

	if reply.UserID != userID {
		return ErrNoPermission
	}

	if err := s.repo.Postgres.Reply.SoftDelete(ctx, replyID); err != nil {
		s.logger.Sugar().Errorf("failed to delete reply(%d): %s", replyID, err.Error())
		return ErrInternal
	}

	return nil
}
