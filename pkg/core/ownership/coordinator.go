// Package ownership 维护跨库的资源归属关系。
//
// 相册与照片行在 MySQL 中按 ownerid/userid 存放，用户文档在 Redis 中保存
// 对应的引用列表。两边写入互相独立，没有分布式事务：关系库插入成功而引用追加
// 失败时，会留下一条没有引用的行，此缺口不重试、不回滚。
package ownership

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	apperrors "photo-share/pkg/common/errors"
	albummodel "photo-share/pkg/core/album/model"
	albumdao "photo-share/pkg/core/album/repository/dao"
	"photo-share/pkg/core/auth"
	photomodel "photo-share/pkg/core/photo/model"
	photodao "photo-share/pkg/core/photo/repository/dao"
	"photo-share/pkg/core/user/model"
	userdao "photo-share/pkg/core/user/repository/dao"
)

// Kind 可归属的资源类型
type Kind int

const (
	KindAlbum Kind = iota + 1
	KindPhoto
)

func (k Kind) String() string {
	switch k {
	case KindAlbum:
		return "album"
	case KindPhoto:
		return "photo"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Registration 注册请求中的身份与凭据
type Registration struct {
	UserID   string
	Email    string
	Password string
}

type Coordinator struct {
	users      userdao.UserRepository
	albums     albumdao.AlbumRepository
	photos     photodao.PhotoRepository
	bcryptCost int
	newID      func() string
}

func NewCoordinator(users userdao.UserRepository, albums albumdao.AlbumRepository, photos photodao.PhotoRepository, bcryptCost int) *Coordinator {
	return &Coordinator{
		users:      users,
		albums:     albums,
		photos:     photos,
		bcryptCost: bcryptCost,
		newID:      uuid.NewString,
	}
}

// RegisterUser 先查重再写入；已存在返回 ErrConflict 且不做任何写操作
func (c *Coordinator) RegisterUser(ctx context.Context, reg Registration) (model.User, error) {
	exists, err := c.users.IsUserIDExists(ctx, reg.UserID)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, fmt.Errorf("%w: userID %q", apperrors.ErrConflict, reg.UserID)
	}

	hash, err := auth.HashPassword(reg.Password, c.bcryptCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:       c.newID(),
		UserID:   reg.UserID,
		Email:    reg.Email,
		Password: hash,
		Albums:   []int64{},
		Photos:   []int64{},
	}
	// 并发注册同一 userID 时由存储层的 create-if-absent 兜底
	if err := c.users.CreateUser(ctx, user); err != nil {
		return model.User{}, err
	}
	return user.WithoutPassword(), nil
}

// AttachResource 把资源 id 追加到所有者对应的引用列表。
// 调用方在关系库写入成功之后调用，失败不回滚关系库记录。
func (c *Coordinator) AttachResource(ctx context.Context, kind Kind, resourceID int64, ownerID string) error {
	var err error
	switch kind {
	case KindAlbum:
		err = c.users.AppendAlbum(ctx, ownerID, resourceID)
	case KindPhoto:
		err = c.users.AppendPhoto(ctx, ownerID, resourceID)
	default:
		return fmt.Errorf("%w: unknown resource kind %s", apperrors.ErrInvalidInput, kind)
	}
	if err != nil {
		return fmt.Errorf("attach %s %d to %q: %w", kind, resourceID, ownerID, err)
	}
	return nil
}

// ListOwnedAlbums 没有相册时返回空切片；不校验用户是否存在
func (c *Coordinator) ListOwnedAlbums(ctx context.Context, ownerID string) ([]albummodel.Album, error) {
	albums, err := c.albums.QueryByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if albums == nil {
		albums = []albummodel.Album{}
	}
	return albums, nil
}

func (c *Coordinator) ListOwnedPhotos(ctx context.Context, ownerID string) ([]photomodel.Photo, error) {
	photos, err := c.photos.QueryByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []photomodel.Photo{}
	}
	return photos, nil
}
