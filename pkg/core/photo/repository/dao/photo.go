package dao

import (
	"context"

	"photo-share/pkg/core/photo/model"
)

type PhotoRepository interface {
	CreatePhoto(ctx context.Context, photo *model.Photo) (int64, error)
	QueryByID(ctx context.Context, id int64) (model.Photo, error)
	ReplacePhoto(ctx context.Context, id int64, photo model.Photo) (bool, error)
	QueryByAlbum(ctx context.Context, albumID int64) ([]model.Photo, error)
	QueryByUser(ctx context.Context, userID string) ([]model.Photo, error)
}
