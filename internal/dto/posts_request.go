package dto

import "github.com/Gannies/community-service/internal/model"

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=50"`
	Content       string   `json:"content" binding:"required,min=1,max=2000"`
	HospitalNames []string `json:"hospital_names"`
}

type UpdatePostRequest struct {
	Title          *string         `json:"title"`
	Content        *string         `json:"content"`
	HospitalNames  *[]string       `json:"hospital_names"`
	AfterBoardType model.BoardType `json:"after_board_type" binding:"omitempty,oneof=theory practice exam-prep employment job event notice"`
}
