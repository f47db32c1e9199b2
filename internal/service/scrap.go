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

type scrapService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newScrapService(logger *zap.Logger, repo *repository.Repository) Scrap {
	return &scrapService{
		logger: logger,
		repo:   repo,
	}
}

func (s *scrapService) ScrapPost(ctx context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	if post.UserID == userID {
		return nil, ErrCannotScrapOwnPost
	}

	existing, err := s.repo.Postgres.Scrap.FindByUserAndPost(ctx, userID, postID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Sugar().Errorf("failed to find user(%s) scrap of post(%d): %s", userID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	if existing != nil {
		// Rescrap restores the soft-deleted row instead of inserting a new one.
		if existing.DeletedAt == nil {
			return nil, ErrAlreadyScraped
		}
		if err := s.repo.Postgres.Scrap.Restore(ctx, existing.ID); err != nil {
			s.logger.Sugar().Errorf("failed to restore scrap(%d): %s", existing.ID, err.Error())
			return nil, ErrInternal
		}
		existing.DeletedAt = nil

		if err := s.repo.Postgres.Post.IncrScraps(ctx, postID, 1); err != nil {
			s.logger.Sugar().Errorf("failed to increment scrap count for post(%d): %s", postID, err.Error())
		}
		return existing, nil
	}

	created, err := s.repo.Postgres.Scrap.Create(ctx, userID, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) scrap of post(%d): %s", userID.String(), postID, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Postgres.Post.IncrScraps(ctx, postID, 1); err != nil {
		s.logger.Sugar().Errorf("failed to increment scrap count for post(%d): %s", postID, err.Error())
	}

	return created, nil
}

func (s *scrapService) UnscrapPost(ctx context.Context, userID uuid.UUID, postID int64) error {
	scrap, err := s.repo.Postgres.Scrap.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrScrapNotFound
		}
		s.logger.Sugar().Errorf("failed to find user(%s) scrap of post(%d): %s", userID.String(), postID, err.Error())
		return ErrInternal
	}
	if scrap.DeletedAt != nil {
		return ErrScrapNotFound
	}

	if err := s.repo.Postgres.Scrap.SoftDelete(ctx, scrap.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete scrap(%d): %s", scrap.ID, err.Error())
		return ErrInternal
	}

	if err := s.repo.Postgres.Post.IncrScraps(ctx, postID, -1); err != nil {
		s.logger.Sugar().Errorf("failed to decrement scrap count for post(%d): %s", postID, err.Error())
	}

	return nil
}

func (s *scrapService) FindMyScraps(ctx context.Context, userID uuid.UUID, page int, limit int, sort string) (*dto.PaginatedResponse[dto.ScrapItem], error) {
	if page <= 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}

	offset := (page - 1) * limit
	scraps, total, err := s.repo.Postgres.Scrap.FindByUser(ctx, userID, limit, offset, sort)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) scraps: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	items := make([]dto.ScrapItem, 0, len(scraps))
	for _, sp := range scraps {
		items = append(items, dto.ScrapItem{
			ScrapID:    sp.Scrap.ID,
			PostID:     sp.Post.ID,
			BoardType:  sp.Post.BoardType,
			Title:      sp.Post.Title,
			ViewCounts: sp.Post.ViewCounts,
			LikeCounts: sp.Post.LikeCounts,
			CreatedAt:  sp.Post.CreatedAt,
		})
	}

	return &dto.PaginatedResponse[dto.ScrapItem]{
		Items:       items,
		TotalItems:  total,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		CurrentPage: page,
	}, nil
}
