package model

import "time"

type TimelineKind string

const (
	TimelineComment TimelineKind = "comment"
	TimelineReply   TimelineKind = "reply"
)

// UnknownPostInfo is substituted for board type and title when a reply's
// parent comment cannot be located even with a deleted-inclusive lookup.
const UnknownPostInfo = "정보없음"

// TimelineEntry is one item of a user's merged comment/reply feed. It is
// derived on demand and never persisted. ReplyID is zero for comment entries.
type TimelineEntry struct {
	Kind      TimelineKind `json:"type"`
	CommentID int64        `json:"comment_id"`
	ReplyID   int64        `json:"reply_id,omitempty"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	PostID    int64        `json:"post_id"`
	BoardType string       `json:"board_type"`
	Title     string       `json:"title"`
}
