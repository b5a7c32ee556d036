package dao

import (
	"context"

	"photo-share/pkg/core/user/model"
)

// UserRepository 凭据存储。找不到返回 errors.ErrNotFound，重复返回 errors.ErrConflict，
// 其他失败包装为 errors.ErrStoreFailure。
type UserRepository interface {
	FindByUserID(ctx context.Context, userID string, includePassword bool) (model.User, error)
	IsUserIDExists(ctx context.Context, userID string) (bool, error)
	CreateUser(ctx context.Context, user model.User) error
	AppendAlbum(ctx context.Context, userID string, albumID int64) error
	AppendPhoto(ctx context.Context, userID string, photoID int64) error
}
