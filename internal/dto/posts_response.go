package dto

import (
	"time"

	"github.com/Gannies/community-service/internal/model"
	"github.com/google/uuid"
)

// PostListItem annotates a board listing row with its comment+reply total.
type PostListItem struct {
	PostID                      int64           `json:"post_id"`
	BoardType                   model.BoardType `json:"board_type"`
	Title                       string          `json:"title"`
	ViewCounts                  int64           `json:"view_counts"`
	LikeCounts                  int64           `json:"like_counts"`
	CreatedAt                   time.Time       `json:"created_at"`
	NumberOfCommentsAndReplies  int64           `json:"number_of_comments_and_replies"`
}

type PostDetail struct {
	PostID           int64           `json:"post_id"`
	BoardType        model.BoardType `json:"board_type"`
	UserID           uuid.UUID       `json:"user_id"`
	Title            string          `json:"title"`
	Content          string          `json:"content"`
	HospitalNames    []string        `json:"hospital_names"`
	ScrapCounts      int64           `json:"scrap_counts"`
	ViewCounts       int64           `json:"view_counts"`
	LikeCounts       int64           `json:"like_counts"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	NumberOfComments int64           `json:"number_of_comments"`
}

type ScrapItem struct {
	ScrapID    int64           `json:"scrap_id"`
	PostID     int64           `json:"post_id"`
	BoardType  model.BoardType `json:"board_type"`
	Title      string          `json:"title"`
	ViewCounts int64           `json:"view_counts"`
	LikeCounts int64           `json:"like_counts"`
	CreatedAt  time.Time       `json:"created_at"`
}
