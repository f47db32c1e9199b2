package handler

import (
	"net/http"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) repliesCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	commentID, ok := int64Param(c, "commentID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdReply, err := h.services.Reply.Create(c.Request.Context(), user.ID, commentID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, createdReply)
}

func (h *Handler) repliesGet(c *gin.Context) {
	commentID, ok := int64Param(c, "commentID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	replies, err := h.services.Reply.FindCommentReplies(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, replies)
}

func (h *Handler) repliesUpdate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	replyID, ok := int64Param(c, "replyID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.UpdateReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedReply, err := h.services.Reply.Update(c.Request.Context(), user.ID, replyID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updatedReply)
}

func (h *Handler) repliesDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	replyID, ok := int64Param(c, "replyID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Reply.Delete(c.Request.Context(), user.ID, replyID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
