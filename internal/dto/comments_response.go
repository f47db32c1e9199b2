package dto

import (
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
)

type ReplyInThread struct {
	ReplyID   int64     `json:"reply_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithReplies is one thread row: the comment (tombstoned if deleted)
// plus its full non-deleted reply list. DeletedAt is surfaced raw so clients
// can tell a tombstone from a normal comment.
type CommentWithReplies struct {
	CommentID int64           `json:"comment_id"`
	PostID    int64           `json:"post_id"`
	BoardType model.BoardType `json:"board_type"`
	UserID    uuid.UUID       `json:"user_id"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at"`
	Replies   []ReplyInThread `json:"replies"`
}

type ThreadResponse struct {
	Comments    []CommentWithReplies `json:"comments"`
	Total       int64                `json:"total"`
	TotalPages  int64                `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
}
