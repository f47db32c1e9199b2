package dto

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=300"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=300"`
}

type CreateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=300"`
}

type UpdateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=300"`
}
