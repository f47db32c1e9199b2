package service

import (
	"context"
	"errors"
	"sort"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type timelineService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newTimelineService(logger *zap.Logger, repo *repository.Repository) Timeline {
	return &timelineService{
		logger: logger,
		repo:   repo,
	}
}

// rankedEntry keeps the parent post's like count next to the entry so the
// popular sort does not have to re-resolve posts.
type rankedEntry struct {
	entry      model.TimelineEntry
	likeCounts int64
}

// FetchMyCommentsAndReplies merges a user's comments and replies into one
// ordered feed. Both sources are materialized in full before sorting: the
// popular order depends on the parent post's like count, which for a reply is
// only reachable through its parent comment, so no partial ordering is
// possible. A reply whose parent comment is missing entirely (not merely
// soft-deleted) is still emitted, with sentinel board/title values; one
// orphaned row must not fail the whole feed.
func (s *timelineService) FetchMyCommentsAndReplies(ctx context.Context, userID uuid.UUID, page int, limit int, sortBy string) (*dto.PaginatedResponse[model.TimelineEntry], error) {
	if page <= 0 || limit <= 0 {
		return nil, ErrInvalidPagination
	}

	comments, err := s.repo.Postgres.Comment.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) comments: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}
	replies, err := s.repo.Postgres.Reply.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) replies: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	// Totals come from the separate per-source counts; the two sets are
	// disjoint by construction, there is nothing to deduplicate.
	totalItems := int64(len(comments)) + int64(len(replies))

	parents, err := s.resolveParentComments(ctx, replies)
	if err != nil {
		s.logger.Sugar().Errorf("failed to resolve parent comments for user(%s) replies: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	postsByID, err := s.resolvePosts(ctx, comments, parents)
	if err != nil {
		s.logger.Sugar().Errorf("failed to resolve posts for user(%s) timeline: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	ranked := make([]rankedEntry, 0, totalItems)
	for _, comment := range comments {
		entry := model.TimelineEntry{
			Kind:      model.TimelineComment,
			CommentID: comment.ID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			PostID:    comment.PostID,
			BoardType: model.UnknownPostInfo,
			Title:     model.UnknownPostInfo,
		}
		var likeCounts int64
		if post, ok := postsByID[comment.PostID]; ok {
			entry.BoardType = string(post.BoardType)
			entry.Title = post.Title
			likeCounts = post.LikeCounts
		}
		ranked = append(ranked, rankedEntry{entry: entry, likeCounts: likeCounts})
	}
	for i, reply := range replies {
		entry := model.TimelineEntry{
			Kind:      model.TimelineReply,
			ReplyID:   reply.ID,
			CommentID: reply.CommentID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
			BoardType: model.UnknownPostInfo,
			Title:     model.UnknownPostInfo,
		}
		var likeCounts int64
		if parent := parents[i]; parent != nil {
			entry.PostID = parent.PostID
			if post, ok := postsByID[parent.PostID]; ok {
				entry.BoardType = string(post.BoardType)
				entry.Title = post.Title
				likeCounts = post.LikeCounts
			}
		}
		ranked = append(ranked, rankedEntry{entry: entry, likeCounts: likeCounts})
	}

	sortEntries(ranked, sortBy)

	totalPages := (totalItems + int64(limit) - 1) / int64(limit)

	skip := (page - 1) * limit
	items := make([]model.TimelineEntry, 0, limit)
	if skip < len(ranked) {
		end := skip + limit
		if end > len(ranked) {
			end = len(ranked)
		}
		for _, re := range ranked[skip:end] {
			items = append(items, re.entry)
		}
	}

	return &dto.PaginatedResponse[model.TimelineEntry]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// resolveParentComments looks up each reply's parent comment concurrently,
// deleted-inclusive: a reply under a tombstoned comment still belongs to that
// comment's post. A missing row yields a nil slot, not an error.
func (s *timelineService) resolveParentComments(ctx context.Context, replies []*model.Reply) ([]*model.Comment, error) {
	parents := make([]*model.Comment, len(replies))
	g, gctx := errgroup.WithContext(ctx)
	for i, reply := range replies {
		i, reply := i, reply
		g.Go(func() error {
			parent, err := s.repo.Postgres.Comment.FindByID(gctx, reply.CommentID, true)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil
				}
				return err
			}
			parents[i] = parent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return parents, nil
}

func (s *timelineService) resolvePosts(ctx context.Context, comments []*model.Comment, parents []*model.Comment) (map[int64]*model.Post, error) {
	idSet := make(map[int64]struct{})
	for _, comment := range comments {
		idSet[comment.PostID] = struct{}{}
	}
	for _, parent := range parents {
		if parent != nil {
			idSet[parent.PostID] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	posts, err := s.repo.Postgres.Post.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	postsByID := make(map[int64]*model.Post, len(posts))
	for _, post := range posts {
		postsByID[post.ID] = post
	}
	return postsByID, nil
}

// sortEntries orders the fully materialized feed. Latest is createdAt
// descending. Popular is parent-post like count descending with a createdAt
// descending tie-break, so equal-popularity entries keep a deterministic
// order instead of relying on fetch order.
func sortEntries(ranked []rankedEntry, sortToken string) {
	if sortToken == SortPopular {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].likeCounts != ranked[j].likeCounts {
				return ranked[i].likeCounts > ranked[j].likeCounts
			}
			return ranked[i].entry.CreatedAt.After(ranked[j].entry.CreatedAt)
		})
		return
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].entry.CreatedAt.After(ranked[j].entry.CreatedAt)
	})
}
