package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"photo-share/pkg/core/album/service"
	"photo-share/pkg/web/model"
)

var albumMessages = messages{
	http.StatusBadRequest:          "Request body is not a valid album object.",
	http.StatusInternalServerError: "Unable to process album request.  Please try again later.",
}

type AlbumHandler struct {
	albums service.AlbumService
}

func NewAlbumHandler(albums service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albums: albums}
}

func albumLink(id int64) string {
	return fmt.Sprintf("/albums/%d", id)
}

// parsePage 超出 int 范围的正数按最大值处理，由分页截断到最后一页；其他非法值按第 1 页
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	switch {
	case err == nil:
		return page
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-"):
		return math.MaxInt
	default:
		return 1
	}
}

// List GET /albums?page=N，page 缺失或非数字按第 1 页
func (h *AlbumHandler) List(ctx context.Context, c *app.RequestContext) {
	result, err := h.albums.List(ctx, parsePage(c.Query("page")))
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AlbumHandler) Create(ctx context.Context, c *app.RequestContext) {
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	album, err := h.albums.Create(ctx, record)
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	c.JSON(http.StatusCreated, model.CreatedRes{
		ID:    album.ID,
		Links: model.Links{Album: albumLink(album.ID)},
	})
}

func (h *AlbumHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	detail, err := h.albums.Get(ctx, id)
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AlbumHandler) Replace(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	if err := h.albums.Replace(ctx, id, record); err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	c.JSON(http.StatusOK, model.LinksRes{Links: model.Links{Album: albumLink(id)}})
}

func (h *AlbumHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	if err := h.albums.Delete(ctx, id); err != nil {
		respondError(ctx, c, err, albumMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
