package service

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrReplyNotFound        = errors.New("reply not found")
	ErrScrapNotFound        = errors.New("scrap not found")
	ErrNoPermission         = errors.New("no permission")
	ErrInvalidPagination    = errors.New("page and limit must be positive")
	ErrInvalidBoardType     = errors.New("invalid board type")
	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyDeleted       = errors.New("already deleted")
	ErrAlreadyScraped       = errors.New("post is already scraped")
	ErrCannotScrapOwnPost   = errors.New("cannot scrap own post")
	ErrNoticeBoardForbidden = errors.New("only admins can post to the notice board")
	ErrNothingToUpdate      = errors.New("nothing to update")
)
