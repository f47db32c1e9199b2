package handler

import (
	"net/http"
	"strings"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersGetMe(c *gin.Context) {
	user := h.getUserFromRequest(c)

	c.JSON(http.StatusOK, user)
}

func (h *Handler) usersGetMyCommentsAndReplies(c *gin.Context) {
	user := h.getUserFromRequest(c)

	page, limit := pagination(c)

	timeline, err := h.services.Timeline.FetchMyCommentsAndReplies(c.Request.Context(), user.ID, page, limit, sortParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

func (h *Handler) usersGetMyScraps(c *gin.Context) {
	user := h.getUserFromRequest(c)

	page, limit := pagination(c)

	scraps, err := h.services.Scrap.FindMyScraps(c.Request.Context(), user.ID, page, limit, sortParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scraps)
}

func (h *Handler) usersExtendSession(c *gin.Context) {
	sessionID := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.UserCache.ExtendSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
