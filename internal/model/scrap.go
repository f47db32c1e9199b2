package model

import (
	"time"

	"github.com/google/uuid"
)

// Scrap is the one soft-deletable entity whose DeletedAt can be cleared:
// scrapping a previously unscrapped post restores the original row.
type Scrap struct {
	ID        int64      `json:"scrap_id"`
	UserID    uuid.UUID  `json:"user_id"`
	PostID    int64      `json:"post_id"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// ScrapedPost pairs a scrap row with its post, as returned by the join in the
// scrap repository.
type ScrapedPost struct {
	Scrap Scrap `json:"scrap"`
	Post  Post  `json:"post"`
}
