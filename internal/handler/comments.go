package handler

import (
	"net/http"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	boardType, ok := boardTypeParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBoardType.Error()))
		return
	}

	postID, ok := int64Param(c, "postID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), user.ID, boardType, postID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, createdComment)
}

func (h *Handler) commentsGet(c *gin.Context) {
	postID, ok := int64Param(c, "postID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	page, limit := pagination(c)

	thread, err := h.services.Comment.FindPostComments(c.Request.Context(), postID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *Handler) commentsUpdate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentID, ok := int64Param(c, "commentID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedComment, err := h.services.Comment.Update(c.Request.Context(), user.ID, commentID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updatedComment)
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentID, ok := int64Param(c, "commentID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), user.ID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
