package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/core/album/model"
	"photo-share/pkg/core/album/repository/dao"
)

type GormAlbumRepository struct {
	db *gorm.DB
}

var _ dao.AlbumRepository = (*GormAlbumRepository)(nil)

func NewGormAlbumRepository(db *gorm.DB) *GormAlbumRepository {
	return &GormAlbumRepository{db: db}
}

func (r *GormAlbumRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Album{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: album count failed", apperrors.WrapGormError(err))
	}
	return count, nil
}

// QueryPage 按 id 升序取 [offset, offset+limit)
func (r *GormAlbumRepository) QueryPage(ctx context.Context, offset, limit int) ([]model.Album, error) {
	albums := make([]model.Album, 0, limit)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&albums).Error
	if err != nil {
		return nil, fmt.Errorf("%w: album page query failed", apperrors.WrapGormError(err))
	}
	return albums, nil
}

func (r *GormAlbumRepository) CreateAlbum(ctx context.Context, album *model.Album) (int64, error) {
	album.ID = 0
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return 0, fmt.Errorf("%w: album creation failed", apperrors.WrapGormError(err))
	}
	return album.ID, nil
}

func (r *GormAlbumRepository) QueryByID(ctx context.Context, id int64) (model.Album, error) {
	var album model.Album
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&album).Error
	switch {
	case apperrors.Is(err, gorm.ErrRecordNotFound):
		return model.Album{}, fmt.Errorf("%w: album %d", apperrors.ErrNotFound, id)
	case err != nil:
		return model.Album{}, fmt.Errorf("%w: album query failed", apperrors.WrapGormError(err))
	default:
		return album, nil
	}
}

// ReplaceAlbum 覆盖全部字段（email 缺省即置空）
func (r *GormAlbumRepository) ReplaceAlbum(ctx context.Context, id int64, album model.Album) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Album{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ownerid": album.OwnerID,
			"name":    album.Name,
			"date":    album.Date,
			"email":   album.Email,
		})
	if result.Error != nil {
		return false, fmt.Errorf("%w: album update failed", apperrors.WrapGormError(result.Error))
	}
	return result.RowsAffected > 0, nil
}

func (r *GormAlbumRepository) DeleteAlbum(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Album{})
	if result.Error != nil {
		return false, fmt.Errorf("%w: album delete failed", apperrors.WrapGormError(result.Error))
	}
	return result.RowsAffected > 0, nil
}

// QueryByOwner 不校验 ownerID 是否对应真实用户
func (r *GormAlbumRepository) QueryByOwner(ctx context.Context, ownerID string) ([]model.Album, error) {
	albums := make([]model.Album, 0)
	err := r.db.WithContext(ctx).Where("ownerid = ?", ownerID).Order("id ASC").Find(&albums).Error
	if err != nil {
		return nil, fmt.Errorf("%w: albums by owner query failed", apperrors.WrapGormError(err))
	}
	return albums, nil
}

func (r *GormAlbumRepository) QueryReviews(ctx context.Context, albumID int64) ([]model.Review, error) {
	reviews := make([]model.Review, 0)
	err := r.db.WithContext(ctx).Where("albumid = ?", albumID).Order("id ASC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("%w: reviews query failed", apperrors.WrapGormError(err))
	}
	return reviews, nil
}
