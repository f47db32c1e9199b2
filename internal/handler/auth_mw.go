package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Gannies/community-service/internal/dto"
	"github.com/Gannies/community-service/internal/model"
	"github.com/Gannies/community-service/internal/service"
	"github.com/Gannies/community-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	idString, _ := claims["id"].(string)
	id, err := uuid.Parse(idString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	user, err := h.services.UserCache.FindByID(c.Request.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		// First request from an identity the auth service minted but we have
		// never seen: sync it from the token claims.
		user, err = h.services.UserCache.Sync(c.Request.Context(), cachedUserFromClaims(id, claims))
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set("cached-user", *user)

	c.Next()
}

func cachedUserFromClaims(id uuid.UUID, claims jwt.MapClaims) model.CachedUser {
	nickname, _ := claims["nickname"].(string)
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return model.CachedUser{
		ID:       id,
		Nickname: nickname,
		Email:    email,
		IsAdmin:  isAdmin,
	}
}
