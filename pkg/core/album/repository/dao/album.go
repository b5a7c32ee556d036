package dao

import (
	"context"

	"photo-share/pkg/core/album/model"
)

// AlbumRepository 关系库中的相册与评论。
// Replace/Delete 返回是否命中记录，命中 0 行由调用方按不存在处理。
type AlbumRepository interface {
	Count(ctx context.Context) (int64, error)
	QueryPage(ctx context.Context, offset, limit int) ([]model.Album, error)
	CreateAlbum(ctx context.Context, album *model.Album) (int64, error)
	QueryByID(ctx context.Context, id int64) (model.Album, error)
	ReplaceAlbum(ctx context.Context, id int64, album model.Album) (bool, error)
	DeleteAlbum(ctx context.Context, id int64) (bool, error)
	QueryByOwner(ctx context.Context, ownerID string) ([]model.Album, error)
	QueryReviews(ctx context.Context, albumID int64) ([]model.Review, error)
}
