package dto

import "time"

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// PaginatedResponse is the shared shape of every paginated listing.
type PaginatedResponse[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}
