package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardType is the fixed set of board categories a post can belong to.
type BoardType string

const (
	BoardTheory     BoardType = "theory"
	BoardPractice   BoardType = "practice"
	BoardExamPrep   BoardType = "exam-prep"
	BoardEmployment BoardType = "employment"
	BoardJob        BoardType = "job"
	BoardEvent      BoardType = "event"
	BoardNotice     BoardType = "notice"
)

func (b BoardType) Valid() bool {
	switch b {
	case BoardTheory, BoardPractice, BoardExamPrep, BoardEmployment, BoardJob, BoardEvent, BoardNotice:
		return true
	}
	return false
}

type Post struct {
	ID            int64      `json:"post_id"`
	UserID        uuid.UUID  `json:"user_id"`
	BoardType     BoardType  `json:"board_type"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	HospitalNames []string   `json:"hospital_names"`
	ScrapCounts   int64      `json:"scrap_counts"`
	ViewCounts    int64      `json:"view_counts"`
	LikeCounts    int64      `json:"like_counts"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at"`
}
