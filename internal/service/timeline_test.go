package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timelineFixture is the concrete two-post scenario: the user wrote one
// comment on post 1 and one later reply under a comment on post 2.
func timelineFixture(t1, t2 time.Time, replyPostLikes int64) (*fakeCommentRepo, *fakeReplyRepo, *fakePostRepo, uuid.UUID) {
	user := uuid.New()
	other := uuid.New()

	posts := &fakePostRepo{
		posts: []*model.Post{
			{ID: 1, UserID: other, BoardType: model.BoardTheory, Title: "first post", LikeCounts: 10, CreatedAt: t1.Add(-time.Hour)},
			{ID: 2, UserID: other, BoardType: model.BoardJob, Title: "second post", LikeCounts: replyPostLikes, CreatedAt: t1.Add(-time.Hour)},
		},
		nextID: 2,
	}
	comments := &fakeCommentRepo{
		comments: []*model.Comment{
			{ID: 1, PostID: 1, BoardType: model.BoardTheory, UserID: user, Content: "my comment", CreatedAt: t1},
			{ID: 2, PostID: 2, BoardType: model.BoardJob, UserID: other, Content: "someone else", CreatedAt: t1},
		},
		nextID: 2,
	}
	replies := &fakeReplyRepo{
		replies: []*model.Reply{
			{ID: 1, CommentID: 2, UserID: user, Content: "my reply", CreatedAt: t2},
		},
		comments: comments,
		nextID:   1,
	}

	return comments, replies, posts, user
}

func TestFetchMyCommentsAndReplies_LatestOrder(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	comments, replies, posts, user := timelineFixture(t1, t2, 50)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, SortLatest)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}

	if feed.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", feed.TotalItems)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(feed.Items))
	}
	if feed.Items[0].Kind != model.TimelineReply || feed.Items[1].Kind != model.TimelineComment {
		t.Errorf("latest order = [%s, %s], want [reply, comment]", feed.Items[0].Kind, feed.Items[1].Kind)
	}
}

func TestFetchMyCommentsAndReplies_PopularOrder(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	ctx := context.Background()

	// Reply's post is more liked (50 > 10): reply leads under both sorts.
	comments, replies, posts, user := timelineFixture(t1, t2, 50)
	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 10, SortPopular)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	if feed.Items[0].Kind != model.TimelineReply {
		t.Errorf("popular (50 vs 10): first = %s, want reply", feed.Items[0].Kind)
	}

	// Reply's post is less liked (1 < 10): popular reorders, latest does not.
	comments, replies, posts, user = timelineFixture(t1, t2, 1)
	svc = newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	popular, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 10, SortPopular)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	if popular.Items[0].Kind != model.TimelineComment || popular.Items[1].Kind != model.TimelineReply {
		t.Errorf("popular (1 vs 10) order = [%s, %s], want [comment, reply]", popular.Items[0].Kind, popular.Items[1].Kind)
	}

	latest, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 10, SortLatest)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	if latest.Items[0].Kind != model.TimelineReply {
		t.Errorf("latest must stay reply-first regardless of likes, got %s", latest.Items[0].Kind)
	}
}

func TestFetchMyCommentsAndReplies_PopularTieBreak(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	// Equal like counts: createdAt descending breaks the tie.
	comments, replies, posts, user := timelineFixture(t1, t2, 10)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, SortPopular)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	if feed.Items[0].Kind != model.TimelineReply {
		t.Errorf("tie-break: first = %s, want the newer reply", feed.Items[0].Kind)
	}
}

func TestFetchMyCommentsAndReplies_Enrichment(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	comments, replies, posts, user := timelineFixture(t1, t2, 50)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, SortLatest)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}

	reply := feed.Items[0]
	if reply.PostID != 2 || reply.BoardType != string(model.BoardJob) || reply.Title != "second post" {
		t.Errorf("reply entry = %+v, want post 2 / job / %q", reply, "second post")
	}
	if reply.ReplyID != 1 || reply.CommentID != 2 {
		t.Errorf("reply identity = (reply %d, comment %d), want (1, 2)", reply.ReplyID, reply.CommentID)
	}

	comment := feed.Items[1]
	if comment.PostID != 1 || comment.BoardType != string(model.BoardTheory) || comment.Title != "first post" {
		t.Errorf("comment entry = %+v, want post 1 / theory / %q", comment, "first post")
	}
	if comment.ReplyID != 0 {
		t.Errorf("comment entry ReplyID = %d, want 0", comment.ReplyID)
	}
}

func TestFetchMyCommentsAndReplies_ReplyUnderTombstonedComment(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	comments, replies, posts, user := timelineFixture(t1, t2, 50)
	// Tombstone the reply's parent comment: enrichment must still resolve
	// the post through the deleted-inclusive lookup.
	comments.comments[1].DeletedAt = deletedAt(t2.Add(time.Minute))

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, SortLatest)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}

	reply := feed.Items[0]
	if reply.Kind != model.TimelineReply || reply.Title != "second post" {
		t.Errorf("reply under tombstoned comment = %+v, want enriched with %q", reply, "second post")
	}
}

func TestFetchMyCommentsAndReplies_OrphanReplySentinel(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	user := uuid.New()

	comments := &fakeCommentRepo{}
	replies := &fakeReplyRepo{
		replies: []*model.Reply{
			{ID: 1, CommentID: 999, UserID: user, Content: "orphan", CreatedAt: t1},
		},
		comments: comments,
		nextID:   1,
	}

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, &fakePostRepo{}, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, SortLatest)
	if err != nil {
		t.Fatalf("an orphaned reply must not fail the feed: %v", err)
	}

	if feed.TotalItems != 1 || len(feed.Items) != 1 {
		t.Fatalf("totalItems=%d len=%d, want 1/1", feed.TotalItems, len(feed.Items))
	}
	orphan := feed.Items[0]
	if orphan.BoardType != model.UnknownPostInfo || orphan.Title != model.UnknownPostInfo {
		t.Errorf("orphan entry = %+v, want %q sentinels", orphan, model.UnknownPostInfo)
	}
	if orphan.Content != "orphan" {
		t.Errorf("orphan content = %q, want %q", orphan.Content, "orphan")
	}
}

func TestFetchMyCommentsAndReplies_TotalsMatchSourceCounts(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	user := uuid.New()

	posts := &fakePostRepo{
		posts:  []*model.Post{{ID: 1, UserID: uuid.New(), BoardType: model.BoardEvent, Title: "p", LikeCounts: 3, CreatedAt: t1}},
		nextID: 1,
	}
	comments := &fakeCommentRepo{nextID: 10}
	for i := int64(1); i <= 3; i++ {
		comments.comments = append(comments.comments, &model.Comment{
			ID: i, PostID: 1, UserID: user, Content: "c", CreatedAt: t1.Add(time.Duration(i) * time.Minute),
		})
	}
	// A deleted comment must not count toward the timeline.
	comments.comments = append(comments.comments, &model.Comment{
		ID: 4, PostID: 1, UserID: user, Content: "gone", CreatedAt: t1, DeletedAt: deletedAt(t1.Add(time.Hour)),
	})
	replies := &fakeReplyRepo{
		replies: []*model.Reply{
			{ID: 1, CommentID: 1, UserID: user, Content: "r1", CreatedAt: t1.Add(10 * time.Minute)},
			{ID: 2, CommentID: 1, UserID: user, Content: "hidden", CreatedAt: t1, DeletedAt: deletedAt(t1.Add(time.Hour))},
		},
		comments: comments,
		nextID:   2,
	}

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))
	ctx := context.Background()

	for _, sortBy := range []string{SortLatest, SortPopular} {
		feed, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 2, sortBy)
		if err != nil {
			t.Fatalf("sort %s: %v", sortBy, err)
		}
		if feed.TotalItems != 4 {
			t.Errorf("sort %s: TotalItems = %d, want 4 (3 comments + 1 reply)", sortBy, feed.TotalItems)
		}
		if feed.TotalPages != 2 {
			t.Errorf("sort %s: TotalPages = %d, want 2", sortBy, feed.TotalPages)
		}
	}
}

func TestFetchMyCommentsAndReplies_PageBeyondEnd(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	comments, replies, posts, user := timelineFixture(t1, t1.Add(time.Hour), 50)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 9, 10, SortLatest)
	if err != nil {
		t.Fatalf("page beyond end must not error: %v", err)
	}
	if len(feed.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(feed.Items))
	}
	if feed.TotalItems != 2 || feed.TotalPages != 1 {
		t.Errorf("totalItems=%d totalPages=%d, want 2/1", feed.TotalItems, feed.TotalPages)
	}
}

func TestFetchMyCommentsAndReplies_InvalidPagination(t *testing.T) {
	comments := &fakeCommentRepo{}
	replies := &fakeReplyRepo{comments: comments}
	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, &fakePostRepo{}, nil))
	ctx := context.Background()

	if _, err := svc.FetchMyCommentsAndReplies(ctx, uuid.New(), 0, 10, SortLatest); !errors.Is(err, ErrInvalidPagination) {
		t.Errorf("page 0: err = %v, want ErrInvalidPagination", err)
	}
	if _, err := svc.FetchMyCommentsAndReplies(ctx, uuid.New(), 1, -1, SortLatest); !errors.Is(err, ErrInvalidPagination) {
		t.Errorf("negative limit: err = %v, want ErrInvalidPagination", err)
	}
}

func TestFetchMyCommentsAndReplies_Idempotent(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	comments, replies, posts, user := timelineFixture(t1, t1.Add(time.Hour), 50)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))
	ctx := context.Background()

	first, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 10, SortPopular)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	second, err := svc.FetchMyCommentsAndReplies(ctx, user, 1, 10, SortPopular)
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two identical calls differ:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestFetchMyCommentsAndReplies_UnknownSortFallsBackToLatest(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	comments, replies, posts, user := timelineFixture(t1, t1.Add(time.Hour), 1)

	svc := newTimelineService(zap.NewNop(), newTestRepo(comments, replies, posts, nil))

	feed, err := svc.FetchMyCommentsAndReplies(context.Background(), user, 1, 10, "oldest")
	if err != nil {
		t.Fatalf("FetchMyCommentsAndReplies: %v", err)
	}
	if feed.Items[0].Kind != model.TimelineReply {
		t.Errorf("unknown sort token must order latest-first, got %s first", feed.Items[0].Kind)
	}
}
