package handler

import (
	"strconv"
	"strings"

	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// MAX_LIMIT bounds page sizes at the transport layer; the services themselves
// accept any positive limit.
const MAX_LIMIT = 50

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts/:boardType")
		{
			posts.GET("", h.postsGetByBoard)
			posts.POST("", h.authMiddleware, h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsUpdate)
				post.DELETE("", h.authMiddleware, h.postsDelete)

				post.GET("/comments", h.commentsGet)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)

				post.POST("/scrap", h.authMiddleware, h.scrapsCreate)
				post.DELETE("/scrap", h.authMiddleware, h.scrapsDelete)
			}
		}

		comments := v1.Group("/comments/:commentID")
		{
			comments.PATCH("", h.authMiddleware, h.commentsUpdate)
			comments.DELETE("", h.authMiddleware, h.commentsDelete)

			comments.GET("/replies", h.repliesGet)
			comments.POST("/replies", h.authMiddleware, h.repliesCreate)
		}

		replies := v1.Group("/replies/:replyID")
		{
			replies.PATCH("", h.authMiddleware, h.repliesUpdate)
			replies.DELETE("", h.authMiddleware, h.repliesDelete)
		}

		me := v1.Group("/users/me", h.authMiddleware)
		{
			me.GET("", h.usersGetMe)
			me.GET("/comments", h.usersGetMyCommentsAndReplies)
			me.GET("/scraps", h.usersGetMyScraps)
			me.POST("/session/extend", h.usersExtendSession)
		}
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("cached-user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}

// pagination reads page/limit query params, 1-based, with transport-level
// defaults and upper bound.
func pagination(c *gin.Context) (page int, limit int) {
	page, err := strconv.Atoi(strings.TrimSpace(c.DefaultQuery("page", "1")))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(strings.TrimSpace(c.DefaultQuery("limit", "10")))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > MAX_LIMIT {
		limit = MAX_LIMIT
	}

	return page, limit
}

func sortParam(c *gin.Context) string {
	sort := strings.TrimSpace(c.DefaultQuery("sort", service.SortLatest))
	if sort != service.SortLatest && sort != service.SortPopular {
		return service.SortLatest
	}
	return sort
}

func boardTypeParam(c *gin.Context) (model.BoardType, bool) {
	boardType := model.BoardType(strings.TrimSpace(c.Param("boardType")))
	return boardType, boardType.Valid()
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	return value, err == nil
}
