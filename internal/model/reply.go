package model

import (
	"time"

	"github.com/google/uuid"
)

// ReplyState differs from CommentState on purpose: a deleted reply is hidden
// entirely, it never appears as a tombstone.
type ReplyState string

const (
	ReplyActive ReplyState = "active"
	ReplyHidden ReplyState = "hidden"
)

type Reply struct {
	ID        int64      `json:"reply_id"`
	CommentID int64      `json:"comment_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

func (r *Reply) State() ReplyState {
	if r.DeletedAt != nil {
		return ReplyHidden
	}
	return ReplyActive
}
