package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"photo-share/pkg/core/user/service"
	"photo-share/pkg/web/model"
)

var (
	registerMessages = messages{
		http.StatusBadRequest:          "Request doesn't contain a valid user.",
		http.StatusForbidden:           "Requested userID already exists. Please try another.",
		http.StatusInternalServerError: "Failed to insert new user.",
	}
	loginMessages = messages{
		http.StatusBadRequest:          "Request needs a user ID and password.",
		http.StatusUnauthorized:        "Invalid credentials.",
		http.StatusInternalServerError: "Failed to fetch user.",
	}
	userMessages = messages{
		http.StatusInternalServerError: "Failed to fetch user.",
	}
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, registerMessages)
		return
	}
	user, err := h.users.Register(ctx, record)
	if err != nil {
		respondError(ctx, c, err, registerMessages)
		return
	}
	c.JSON(http.StatusCreated, model.RegisterRes{
		ID:    user.ID,
		Links: model.Links{User: "/users/" + user.UserID},
	})
}

func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, loginMessages)
		return
	}
	token, err := h.users.Login(ctx, record)
	if err != nil {
		respondError(ctx, c, err, loginMessages)
		return
	}
	c.JSON(http.StatusOK, model.LoginRes{Token: token})
}

// 以下接口均在 RequireOwner 之后执行，路径中的 userID 已与令牌身份一致

func (h *UserHandler) Profile(ctx context.Context, c *app.RequestContext) {
	user, err := h.users.Profile(ctx, c.Param("userID"))
	if err != nil {
		respondError(ctx, c, err, userMessages)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Albums(ctx context.Context, c *app.RequestContext) {
	albums, err := h.users.Albums(ctx, c.Param("userID"))
	if err != nil {
		respondError(ctx, c, err, messages{http.StatusInternalServerError: "Unable to fetch albums.  Please try again later."})
		return
	}
	c.JSON(http.StatusOK, model.UserAlbumsRes{Albums: albums})
}

func (h *UserHandler) Photos(ctx context.Context, c *app.RequestContext) {
	photos, err := h.users.Photos(ctx, c.Param("userID"))
	if err != nil {
		respondError(ctx, c, err, messages{http.StatusInternalServerError: "Unable to fetch photos.  Please try again later."})
		return
	}
	c.JSON(http.StatusOK, model.UserPhotosRes{Photos: photos})
}
