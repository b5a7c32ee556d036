package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	"photo-share/pkg/core/ownership"
	"photo-share/pkg/core/photo/model"
	"photo-share/pkg/core/photo/repository/dao"
)

var PhotoSchema = schema.Schema{
	"userid":  {Required: true},
	"albumid": {Required: true},
	"caption": {Required: false},
	"data":    {Required: true},
}

type PhotoService interface {
	Create(ctx context.Context, record schema.Record) (model.Photo, error)
	Get(ctx context.Context, id int64) (model.Photo, error)
	// Replace 返回替换后的照片，userid/albumid 与库中不一致时返回 ErrForbidden
	Replace(ctx context.Context, id int64, record schema.Record) (model.Photo, error)
}

type photoService struct {
	photos dao.PhotoRepository
	owners *ownership.Coordinator
}

func NewPhotoService(photos dao.PhotoRepository, owners *ownership.Coordinator) PhotoService {
	return &photoService{photos: photos, owners: owners}
}

func decodePhoto(record schema.Record) (model.Photo, error) {
	if !PhotoSchema.Validate(record) {
		return model.Photo{}, fmt.Errorf("%w: photo missing %v", apperrors.ErrInvalidInput, PhotoSchema.Missing(record))
	}
	var photo model.Photo
	if err := PhotoSchema.Extract(record).Decode(&photo); err != nil {
		return model.Photo{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return photo, nil
}

func (s *photoService) Create(ctx context.Context, record schema.Record) (model.Photo, error) {
	photo, err := decodePhoto(record)
	if err != nil {
		return model.Photo{}, err
	}
	id, err := s.photos.CreatePhoto(ctx, &photo)
	if err != nil {
		return model.Photo{}, err
	}
	photo.ID = id

	if err := s.owners.AttachResource(ctx, ownership.KindPhoto, id, photo.UserID); err != nil {
		hlog.CtxWarnf(ctx, "photo %d stored without owner reference: %v", id, err)
	}
	return photo, nil
}

func (s *photoService) Get(ctx context.Context, id int64) (model.Photo, error) {
	return s.photos.QueryByID(ctx, id)
}

func (s *photoService) Replace(ctx context.Context, id int64, record schema.Record) (model.Photo, error) {
	updated, err := decodePhoto(record)
	if err != nil {
		return model.Photo{}, err
	}

	existing, err := s.photos.QueryByID(ctx, id)
	if err != nil {
		return model.Photo{}, err
	}
	if !existing.SameOwnership(updated) {
		return model.Photo{}, fmt.Errorf("%w: photo %d must keep userid %q and albumid %d",
			apperrors.ErrForbidden, id, existing.UserID, existing.AlbumID)
	}

	// 读取与更新之间照片可能已被删除
	ok, err := s.photos.ReplacePhoto(ctx, id, updated)
	if err != nil {
		return model.Photo{}, err
	}
	if !ok {
		return model.Photo{}, fmt.Errorf("%w: photo %d", apperrors.ErrNotFound, id)
	}
	updated.ID = id
	return updated, nil
}
