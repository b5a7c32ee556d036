package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"photo-share/pkg/core/photo/service"
	"photo-share/pkg/web/model"
)

var photoMessages = messages{
	http.StatusBadRequest:          "Request body is not a valid photo object.",
	http.StatusForbidden:           "Updated photo must have the same albumid and userid",
	http.StatusInternalServerError: "Unable to process photo request.  Please try again later.",
}

type PhotoHandler struct {
	photos service.PhotoService
}

func NewPhotoHandler(photos service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

func photoLinks(photoID, albumID int64) model.Links {
	return model.Links{
		Photo: fmt.Sprintf("/photos/%d", photoID),
		Album: albumLink(albumID),
	}
}

func (h *PhotoHandler) Create(ctx context.Context, c *app.RequestContext) {
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	photo, err := h.photos.Create(ctx, record)
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	c.JSON(http.StatusCreated, model.CreatedRes{
		ID:    photo.ID,
		Links: photoLinks(photo.ID, photo.AlbumID),
	})
}

func (h *PhotoHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	photo, err := h.photos.Get(ctx, id)
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	c.JSON(http.StatusOK, photo)
}

// Replace PUT /photos/:id，不允许修改 userid 与 albumid（403）
func (h *PhotoHandler) Replace(ctx context.Context, c *app.RequestContext) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	record, err := parseRecord(c)
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	photo, err := h.photos.Replace(ctx, id, record)
	if err != nil {
		respondError(ctx, c, err, photoMessages)
		return
	}
	c.JSON(http.StatusOK, model.LinksRes{Links: photoLinks(id, photo.AlbumID)})
}
