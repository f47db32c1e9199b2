package model

import "github.com/google/uuid"

type CachedUser struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}
