package handler

import (
	"errors"
	"net/http"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized    = errors.New("user is not authorized")
	errInvalidBoardType = errors.New("invalid board type")
	errInvalidPostID    = errors.New("invalid post ID")
	errInvalidID        = errors.New("invalid ID")
)

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrReplyNotFound),
		errors.Is(err, service.ErrScrapNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoPermission),
		errors.Is(err, service.ErrNoticeBoardForbidden),
		errors.Is(err, service.ErrCannotScrapOwnPost):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidPagination),
		errors.Is(err, service.ErrInvalidBoardType),
		errors.Is(err, service.ErrNothingToUpdate):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyDeleted),
		errors.Is(err, service.ErrAlreadyScraped):
		status = http.StatusConflict
	}

	c.JSON(status, dto.NewBasicResponse(false, err.Error()))
}
