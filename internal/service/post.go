package service

import (
	"context"
	"errors"
	"time"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) FindByBoard(ctx context.Context, boardType model.BoardType, page int, limit int, sort string) (*dto.PaginatedResponse[dto.PostListItem], error) {
	if page <= 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}

	offset := (page - 1) * limit
	posts, total, err := s.repo.Postgres.Post.FindByBoard(ctx, boardType, limit, offset, sort)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts of board(%s): %s", boardType, err.Error())
		return nil, ErrInternal
	}

	items := make([]dto.PostListItem, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			count, err := s.CountCommentsAndReplies(gctx, post.ID)
			if err != nil {
				return err
			}
			items[i] = dto.PostListItem{
				PostID:                     post.ID,
				BoardType:                  post.BoardType,
				Title:                      post.Title,
				ViewCounts:                 post.ViewCounts,
				LikeCounts:                 post.LikeCounts,
				CreatedAt:                  post.CreatedAt,
				NumberOfCommentsAndReplies: count,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ErrInternal
	}

	return &dto.PaginatedResponse[dto.PostListItem]{
		Items:       items,
		TotalItems:  total,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		CurrentPage: page,
	}, nil
}

func (s *postService) Create(ctx context.Context, user model.CachedUser, boardType model.BoardType, in dto.CreatePostRequest) (*model.Post, error) {
	if boardType == model.BoardNotice && !user.IsAdmin {
		return nil, ErrNoticeBoardForbidden
	}

	post := model.Post{
		UserID:        user.ID,
		BoardType:     boardType,
		Title:         in.Title,
		Content:       in.Content,
		HospitalNames: in.HospitalNames,
	}

	created, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return created, nil
}

func (s *postService) FindByID(ctx context.Context, boardType model.BoardType, postID int64) (*dto.PostDetail, error) {
	post, err := s.findPostInBoard(ctx, boardType, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.CountCommentsAndReplies(ctx, postID)
	if err != nil {
		return nil, err
	}

	go s.incrViews(post.ID)

	return &dto.PostDetail{
		PostID:           post.ID,
		BoardType:        post.BoardType,
		UserID:           post.UserID,
		Title:            post.Title,
		Content:          post.Content,
		HospitalNames:    post.HospitalNames,
		ScrapCounts:      post.ScrapCounts,
		ViewCounts:       post.ViewCounts,
		LikeCounts:       post.LikeCounts,
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.UpdatedAt,
		NumberOfComments: count,
	}, nil
}

func (s *postService) incrViews(postID int64) {
	ctx := context.Background()
	if err := s.repo.Postgres.Post.IncrViews(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to increment views for post(%d): %s", postID, err.Error())
	}
}

func (s *postService) Update(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64, in dto.UpdatePostRequest) (*model.Post, error) {
	if in.AfterBoardType != "" && !in.AfterBoardType.Valid() {
		return nil, ErrInvalidBoardType
	}

	post, err := s.findPostInBoard(ctx, boardType, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, ErrNoPermission
	}

	changed := false
	if in.Title != nil && *in.Title != post.Title {
		post.Title = *in.Title
		changed = true
	}
	if in.Content != nil && *in.Content != post.Content {
		post.Content = *in.Content
		changed = true
	}
	if in.HospitalNames != nil {
		post.HospitalNames = *in.HospitalNames
		changed = true
	}
	boardChanged := false
	if in.AfterBoardType != "" && in.AfterBoardType != post.BoardType {
		post.BoardType = in.AfterBoardType
		changed = true
		boardChanged = true
	}

	if !changed {
		return nil, ErrNothingToUpdate
	}

	post.UpdatedAt = time.Now()
	if err := s.repo.Postgres.Post.Save(ctx, post); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	// Comments carry a denormalized board_type; a board move has to carry
	// them along or board-scoped comment reads disagree with the post.
	if boardChanged {
		if err := s.repo.Postgres.Comment.UpdateBoardByPost(ctx, postID, post.BoardType); err != nil {
			s.logger.Sugar().Errorf("failed to move comments of post(%d) to board(%s): %s", postID, post.BoardType, err.Error())
			return nil, ErrInternal
		}
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, userID uuid.UUID, boardType model.BoardType, postID int64) error {
	post, err := s.findPostInBoard(ctx, boardType, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return ErrNoPermission
	}

	if err := s.repo.Postgres.Post.SoftDelete(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", postID, err.Error())
		return ErrInternal
	}

	return nil
}

// CountCommentsAndReplies is the comment+reply total for one post, computed
// from the store's count operations, deleted rows excluded.
func (s *postService) CountCommentsAndReplies(ctx context.Context, postID int64) (int64, error) {
	numberOfComments, err := s.repo.Postgres.Comment.CountByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count comments of post(%d): %s", postID, err.Error())
		return 0, ErrInternal
	}

	numberOfReplies, err := s.repo.Postgres.Reply.CountByPost(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count replies of post(%d): %s", postID, err.Error())
		return 0, ErrInternal
	}

	return numberOfComments + numberOfReplies, nil
}

func (s *postService) findPostInBoard(ctx context.Context, boardType model.BoardType, postID int64) (*model.Post, error) {
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

	return post, nil
}
