package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/core/photo/model"
	"photo-share/pkg/core/photo/repository/dao"
)

type GormPhotoRepository struct {
	db *gorm.DB
}

var _ dao.PhotoRepository = (*GormPhotoRepository)(nil)

func NewGormPhotoRepository(db *gorm.DB) *GormPhotoRepository {
	return &GormPhotoRepository{db: db}
}

func (r *GormPhotoRepository) CreatePhoto(ctx context.Context, photo *model.Photo) (int64, error) {
	photo.ID = 0
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return 0, fmt.Errorf("%w: photo creation failed", apperrors.WrapGormError(err))
	}
	return photo.ID, nil
}

func (r *GormPhotoRepository) QueryByID(ctx context.Context, id int64) (model.Photo, error) {
	var photo model.Photo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	switch {
	case apperrors.Is(err, gorm.ErrRecordNotFound):
		return model.Photo{}, fmt.Errorf("%w: photo %d", apperrors.ErrNotFound, id)
	case err != nil:
		return model.Photo{}, fmt.Errorf("%w: photo query failed", apperrors.WrapGormError(err))
	default:
		return photo, nil
	}
}

// ReplacePhoto 覆盖全部字段；所属关系的校验在 service 层完成
func (r *GormPhotoRepository) ReplacePhoto(ctx context.Context, id int64, photo model.Photo) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"userid":  photo.UserID,
			"albumid": photo.AlbumID,
			"caption": photo.Caption,
			"data":    photo.Data,
		})
	if result.Error != nil {
		return false, fmt.Errorf("%w: photo update failed", apperrors.WrapGormError(result.Error))
	}
	return result.RowsAffected > 0, nil
}

func (r *GormPhotoRepository) QueryByAlbum(ctx context.Context, albumID int64) ([]model.Photo, error) {
	photos := make([]model.Photo, 0)
	err := r.db.WithContext(ctx).Where("albumid = ?", albumID).Order("id ASC").Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: photos by album query failed", apperrors.WrapGormError(err))
	}
	return photos, nil
}

func (r *GormPhotoRepository) QueryByUser(ctx context.Context, userID string) ([]model.Photo, error) {
	photos := make([]model.Photo, 0)
	err := r.db.WithContext(ctx).Where("userid = ?", userID).Order("id ASC").Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: photos by user query failed", apperrors.WrapGormError(err))
	}
	return photos, nil
}
