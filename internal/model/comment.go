package model

import (
	"time"

	"github.com/google/uuid"
)

// DeletedCommentPlaceholder replaces the content of a soft-deleted comment in
// every read path. The stored content is never overwritten.
const DeletedCommentPlaceholder = "삭제된 댓글입니다."

// CommentState makes the comment soft-delete lifecycle explicit: a deleted
// comment stays visible in its thread as a tombstone.
type CommentState string

const (
	CommentActive     CommentState = "active"
	CommentTombstoned CommentState = "tombstoned"
)

type Comment struct {
	ID        int64      `json:"comment_id"`
	PostID    int64      `json:"post_id"`
	BoardType BoardType  `json:"board_type"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (c *Comment) State() CommentState {
	if c.DeletedAt != nil {
		return CommentTombstoned
	}
	return CommentActive
}

// DisplayContent is the read-time tombstone mapping: tombstoned comments
// expose the fixed placeholder instead of their stored content.
func (c *Comment) DisplayContent() string {
	if c.State() == CommentTombstoned {
		return DeletedCommentPlaceholder
	}
	return c.Content
}
