package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/repository"
	"github.com/Gannies/community-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type fakeCommentRepo struct {
	comments []*model.Comment
	nextID   int64
}

func (f *fakeCommentRepo) Create(_ context.Context, comment model.Comment) (*model.Comment, error) {
	f.nextID++
	comment.ID = f.nextID
	now := time.Now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
		comment.UpdatedAt = now
	}
	f.comments = append(f.comments, &comment)
	return &comment, nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id int64, includeDeleted bool) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID != id {
			continue
		}
		if !includeDeleted && c.DeletedAt != nil {
			return nil, pgx.ErrNoRows
		}
		copied := *c
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCommentRepo) FindByPost(_ context.Context, postID int64, boardType model.BoardType) ([]*model.Comment, error) {
	var result []*model.Comment
	for _, c := range f.comments {
		if c.PostID != postID {
			continue
		}
		if boardType != "" && c.BoardType != boardType {
			continue
		}
		result = append(result, c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeCommentRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*model.Comment, error) {
	var result []*model.Comment
	for _, c := range f.comments {
		if c.UserID == userID && c.DeletedAt == nil {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeCommentRepo) CountByPost(_ context.Context, postID int64) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.PostID == postID && c.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, id int64, content string) error {
	for _, c := range f.comments {
		if c.ID == id {
			c.Content = content
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeCommentRepo) UpdateBoardByPost(_ context.Context, postID int64, boardType model.BoardType) error {
	for _, c := range f.comments {
		if c.PostID == postID {
			c.BoardType = boardType
		}
	}
	return nil
}

func (f *fakeCommentRepo) SoftDelete(_ context.Context, id int64) error {
	for _, c := range f.comments {
		if c.ID == id {
			now := time.Now()
			c.DeletedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeReplyRepo struct {
	replies  []*model.Reply
	comments *fakeCommentRepo
	nextID   int64
}

func (f *fakeReplyRepo) Create(_ context.Context, reply model.Reply) (*model.Reply, error) {
	f.nextID++
	reply.ID = f.nextID
	now := time.Now()
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = now
		reply.UpdatedAt = now
	}
	f.replies = append(f.replies, &reply)
	return &reply, nil
}

func (f *fakeReplyRepo) FindByID(_ context.Context, id int64) (*model.Reply, error) {
	for _, r := range f.replies {
		if r.ID == id && r.DeletedAt == nil {
			copied := *r
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeReplyRepo) FindByComment(_ context.Context, commentID int64) ([]*model.Reply, error) {
	var result []*model.Reply
	for _, r := range f.replies {
		if r.CommentID == commentID && r.DeletedAt == nil {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeReplyRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*model.Reply, error) {
	var result []*model.Reply
	for _, r := range f.replies {
		if r.UserID == userID && r.DeletedAt == nil {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeReplyRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	for _, r := range f.replies {
		if r.DeletedAt != nil {
			continue
		}
		parent, err := f.comments.FindByID(ctx, r.CommentID, true)
		if err != nil {
			continue
		}
		if parent.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReplyRepo) Update(_ context.Context, id int64, content string) error {
	for _, r := range f.replies {
		if r.ID == id {
			r.Content = content
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeReplyRepo) SoftDelete(_ context.Context, id int64) error {
	for _, r := range f.replies {
		if r.ID == id {
			now := time.Now()
			r.DeletedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakePostRepo struct {
	posts  []*model.Post
	nextID int64
}

func (f *fakePostRepo) Create(_ context.Context, post model.Post) (*model.Post, error) {
	f.nextID++
	post.ID = f.nextID
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
		post.UpdatedAt = now
	}
	f.posts = append(f.posts, &post)
	return &post, nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id int64) (*model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id && p.DeletedAt == nil {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePostRepo) FindByIDs(_ context.Context, ids []int64) ([]*model.Post, error) {
	idSet := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	var result []*model.Post
	for _, p := range f.posts {
		if _, ok := idSet[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostRepo) FindByBoard(_ context.Context, boardType model.BoardType, limit int, offset int, sortBy string) ([]*model.Post, int64, error) {
	var matching []*model.Post
	for _, p := range f.posts {
		if p.BoardType == boardType && p.DeletedAt == nil {
			matching = append(matching, p)
		}
	}
	if sortBy == SortPopular {
		sort.SliceStable(matching, func(i, j int) bool {
			if matching[i].LikeCounts != matching[j].LikeCounts {
				return matching[i].LikeCounts > matching[j].LikeCounts
			}
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		})
	} else {
		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		})
	}

	total := int64(len(matching))
	if offset >= len(matching) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], total, nil
}

func (f *fakePostRepo) Save(_ context.Context, post *model.Post) error {
	for i, p := range f.posts {
		if p.ID == post.ID {
			copied := *post
			f.posts[i] = &copied
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePostRepo) SoftDelete(_ context.Context, id int64) error {
	for _, p := range f.posts {
		if p.ID == id {
			now := time.Now()
			p.DeletedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePostRepo) IncrViews(_ context.Context, id int64) error {
	for _, p := range f.posts {
		if p.ID == id {
			p.ViewCounts++
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePostRepo) IncrScraps(_ context.Context, id int64, delta int64) error {
	for _, p := range f.posts {
		if p.ID == id {
			p.ScrapCounts += delta
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeScrapRepo struct {
	scraps []*model.Scrap
	posts  *fakePostRepo
	nextID int64
}

func (f *fakeScrapRepo) Create(_ context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error) {
	f.nextID++
	scrap := &model.Scrap{
		ID:        f.nextID,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	f.scraps = append(f.scraps, scrap)
	copied := *scrap
	return &copied, nil
}

func (f *fakeScrapRepo) FindByUserAndPost(_ context.Context, userID uuid.UUID, postID int64) (*model.Scrap, error) {
	for _, s := range f.scraps {
		if s.UserID == userID && s.PostID == postID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeScrapRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit int, offset int, sortBy string) ([]*model.ScrapedPost, int64, error) {
	var matching []*model.ScrapedPost
	for _, s := range f.scraps {
		if s.UserID != userID || s.DeletedAt != nil {
			continue
		}
		post, err := f.posts.FindByID(ctx, s.PostID)
		if err != nil {
			continue
		}
		matching = append(matching, &model.ScrapedPost{Scrap: *s, Post: *post})
	}
	if sortBy == SortPopular {
		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].Post.LikeCounts > matching[j].Post.LikeCounts
		})
	} else {
		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].Scrap.CreatedAt.After(matching[j].Scrap.CreatedAt)
		})
	}

	total := int64(len(matching))
	if offset >= len(matching) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], total, nil
}

func (f *fakeScrapRepo) Restore(_ context.Context, id int64) error {
	for _, s := range f.scraps {
		if s.ID == id {
			s.DeletedAt = nil
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeScrapRepo) SoftDelete(_ context.Context, id int64) error {
	for _, s := range f.scraps {
		if s.ID == id {
			now := time.Now()
			s.DeletedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeUserCacheRepo struct {
	users map[uuid.UUID]model.CachedUser
	finds int
}

func (f *fakeUserCacheRepo) Create(_ context.Context, cachedUser model.CachedUser) error {
	if f.users == nil {
		f.users = make(map[uuid.UUID]model.CachedUser)
	}
	f.users[cachedUser.ID] = cachedUser
	return nil
}

func (f *fakeUserCacheRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CachedUser, error) {
	f.finds++
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

// fakeRedisDefault backs the redis Default interface with a plain map; Expire
// records the last key and ttl it saw.
type fakeRedisDefault struct {
	values     map[string]string
	expiredKey string
	expiredTTL time.Duration
}

func (f *fakeRedisDefault) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = string(valueJSON)
	return nil
}

func (f *fakeRedisDefault) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	value, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(value)
	return cmd
}

func (f *fakeRedisDefault) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expiredKey = key
	f.expiredTTL = ttl
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func newTestRepo(comments *fakeCommentRepo, replies *fakeReplyRepo, posts *fakePostRepo, scraps *fakeScrapRepo) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:    posts,
			Comment: comments,
			Reply:   replies,
			Scrap:   scraps,
		},
	}
}

func deletedAt(t time.Time) *time.Time {
	return &t
}
