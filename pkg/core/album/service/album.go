package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	"photo-share/pkg/core/album/model"
	"photo-share/pkg/core/album/repository/dao"
	"photo-share/pkg/core/ownership"
	"photo-share/pkg/core/pagination"
	photomodel "photo-share/pkg/core/photo/model"
	photodao "photo-share/pkg/core/photo/repository/dao"
)

// AlbumSchema 相册字段要求，email 可选
var AlbumSchema = schema.Schema{
	"ownerid": {Required: true},
	"name":    {Required: true},
	"date":    {Required: true},
	"email":   {Required: false},
}

// Page 一页相册及分页信息
type Page struct {
	Albums     []model.Album     `json:"albums"`
	PageNumber int               `json:"pageNumber"`
	TotalPages int               `json:"totalPages"`
	PageSize   int               `json:"pageSize"`
	TotalCount int64             `json:"totalCount"`
	Links      map[string]string `json:"links"`
}

// Detail 相册详情：相册字段平铺，附带评论和照片
type Detail struct {
	model.Album
	Reviews []model.Review     `json:"reviews"`
	Photos  []photomodel.Photo `json:"photos"`
}

type AlbumService interface {
	List(ctx context.Context, requestedPage int) (Page, error)
	Create(ctx context.Context, record schema.Record) (model.Album, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Replace(ctx context.Context, id int64, record schema.Record) error
	Delete(ctx context.Context, id int64) error
}

type albumService struct {
	albums   dao.AlbumRepository
	photos   photodao.PhotoRepository
	owners   *ownership.Coordinator
	pageSize int
}

func NewAlbumService(albums dao.AlbumRepository, photos photodao.PhotoRepository, owners *ownership.Coordinator, pageSize int) AlbumService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &albumService{albums: albums, photos: photos, owners: owners, pageSize: pageSize}
}

func (s *albumService) List(ctx context.Context, requestedPage int) (Page, error) {
	total, err := s.albums.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	window := pagination.Paginate(requestedPage, total, s.pageSize)

	albums, err := s.albums.QueryPage(ctx, window.Offset, window.PageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Albums:     albums,
		PageNumber: window.Page,
		TotalPages: window.LastPage,
		PageSize:   window.PageSize,
		TotalCount: window.TotalCount,
		Links:      window.Links("/albums"),
	}, nil
}

func decodeAlbum(record schema.Record) (model.Album, error) {
	if !AlbumSchema.Validate(record) {
		return model.Album{}, fmt.Errorf("%w: album missing %v", apperrors.ErrInvalidInput, AlbumSchema.Missing(record))
	}
	var album model.Album
	if err := AlbumSchema.Extract(record).Decode(&album); err != nil {
		return model.Album{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return album, nil
}

// Create 插入相册后把 id 追加到所有者文档；追加失败只记录日志
func (s *albumService) Create(ctx context.Context, record schema.Record) (model.Album, error) {
	album, err := decodeAlbum(record)
	if err != nil {
		return model.Album{}, err
	}
	id, err := s.albums.CreateAlbum(ctx, &album)
	if err != nil {
		return model.Album{}, err
	}
	album.ID = id

	if err := s.owners.AttachResource(ctx, ownership.KindAlbum, id, album.OwnerID); err != nil {
		hlog.CtxWarnf(ctx, "album %d stored without owner reference: %v", id, err)
	}
	return album, nil
}

// Get 依次读取相册、评论、照片，任一步找不到即返回 ErrNotFound，不拼装部分结果
func (s *albumService) Get(ctx context.Context, id int64) (Detail, error) {
	album, err := s.albums.QueryByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	reviews, err := s.albums.QueryReviews(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	photos, err := s.photos.QueryByAlbum(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Album: album, Reviews: reviews, Photos: photos}, nil
}

func (s *albumService) Replace(ctx context.Context, id int64, record schema.Record) error {
	album, err := decodeAlbum(record)
	if err != nil {
		return err
	}
	ok, err := s.albums.ReplaceAlbum(ctx, id, album)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: album %d", apperrors.ErrNotFound, id)
	}
	return nil
}

func (s *albumService) Delete(ctx context.Context, id int64) error {
	ok, err := s.albums.DeleteAlbum(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: album %d", apperrors.ErrNotFound, id)
	}
	return nil
}
