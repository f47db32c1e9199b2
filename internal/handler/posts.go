package handler

import (
	"net/http"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGetByBoard(c *gin.Context) {
	boardType, ok := boardTypeParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBoardType.Error()))
		return
	}

	page, limit := pagination(c)

	posts, err := h.services.Post.FindByBoard(c.Request.Context(), boardType, page, limit, sortParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	boardType, ok := boardTypeParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidBoardType.Error()))
		return
	}

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), *user, boardType, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, createdPost)
}

func (h *Handler) postsGetByID(c *gin.Context) {
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

	post, err := h.services.Post.FindByID(c.Request.Context(), boardType, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) postsUpdate(c *gin.Context) {
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

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), user.ID, boardType, postID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
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

	if err := h.services.Post.Delete(c.Request.Context(), user.ID, boardType, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) scrapsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, ok := int64Param(c, "postID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	scrap, err := h.services.Scrap.ScrapPost(c.Request.Context(), user.ID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scrap)
}

func (h *Handler) scrapsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	postID, ok := int64Param(c, "postID")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Scrap.UnscrapPost(c.Request.Context(), user.ID, postID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
