// Package memstore 内存版存储，实现与 Redis/MySQL 版本相同的语义，供测试注入
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	apperrors "photo-share/pkg/common/errors"
	albummodel "photo-share/pkg/core/album/model"
	albumdao "photo-share/pkg/core/album/repository/dao"
	photomodel "photo-share/pkg/core/photo/model"
	photodao "photo-share/pkg/core/photo/repository/dao"
	usermodel "photo-share/pkg/core/user/model"
	userdao "photo-share/pkg/core/user/repository/dao"
)

// Users 内存用户文档存储。Fail 非空时所有操作返回该错误（包装为存储故障）。
type Users struct {
	mu    sync.Mutex
	docs  map[string]usermodel.User
	Fail  error
	Calls int
}

var _ userdao.UserRepository = (*Users)(nil)

func NewUsers() *Users {
	return &Users{docs: map[string]usermodel.User{}}
}

func (s *Users) failure() error {
	s.Calls++
	if s.Fail != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreFailure, s.Fail)
	}
	return nil
}

func (s *Users) FindByUserID(_ context.Context, userID string, includePassword bool) (usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return usermodel.User{}, err
	}
	u, ok := s.docs[userID]
	if !ok {
		return usermodel.User{}, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, userID)
	}
	u.Albums = append([]int64{}, u.Albums...)
	u.Photos = append([]int64{}, u.Photos...)
	if !includePassword {
		u = u.WithoutPassword()
	}
	return u, nil
}

func (s *Users) IsUserIDExists(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return false, err
	}
	_, ok := s.docs[userID]
	return ok, nil
}

func (s *Users) CreateUser(_ context.Context, user usermodel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return err
	}
	if _, ok := s.docs[user.UserID]; ok {
		return fmt.Errorf("%w: userID %q", apperrors.ErrConflict, user.UserID)
	}
	user.Albums = []int64{}
	user.Photos = []int64{}
	s.docs[user.UserID] = user
	return nil
}

func (s *Users) AppendAlbum(_ context.Context, userID string, albumID int64) error {
	return s.appendRef(userID, albumID, true)
}

func (s *Users) AppendPhoto(_ context.Context, userID string, photoID int64) error {
	return s.appendRef(userID, photoID, false)
}

func (s *Users) appendRef(userID string, id int64, album bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return err
	}
	u, ok := s.docs[userID]
	if !ok {
		return fmt.Errorf("%w: user %q", apperrors.ErrNotFound, userID)
	}
	if album {
		u.Albums = append(u.Albums, id)
	} else {
		u.Photos = append(u.Photos, id)
	}
	s.docs[userID] = u
	return nil
}

// Albums 内存相册与评论表
type Albums struct {
	mu      sync.Mutex
	rows    map[int64]albummodel.Album
	reviews []albummodel.Review
	nextID  int64
	Fail    error
}

var _ albumdao.AlbumRepository = (*Albums)(nil)

func NewAlbums() *Albums {
	return &Albums{rows: map[int64]albummodel.Album{}}
}

func (s *Albums) failure() error {
	if s.Fail != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreFailure, s.Fail)
	}
	return nil
}

// AddReview 测试数据准备
func (s *Albums) AddReview(r albummodel.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = int64(len(s.reviews) + 1)
	s.reviews = append(s.reviews, r)
}

func (s *Albums) sorted() []albummodel.Album {
	out := make([]albummodel.Album, 0, len(s.rows))
	for _, a := range s.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Albums) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return 0, err
	}
	return int64(len(s.rows)), nil
}

func (s *Albums) QueryPage(_ context.Context, offset, limit int) ([]albummodel.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return nil, err
	}
	all := s.sorted()
	if offset >= len(all) {
		return []albummodel.Album{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *Albums) CreateAlbum(_ context.Context, album *albummodel.Album) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return 0, err
	}
	s.nextID++
	album.ID = s.nextID
	s.rows[album.ID] = *album
	return album.ID, nil
}

func (s *Albums) QueryByID(_ context.Context, id int64) (albummodel.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return albummodel.Album{}, err
	}
	a, ok := s.rows[id]
	if !ok {
		return albummodel.Album{}, fmt.Errorf("%w: album %d", apperrors.ErrNotFound, id)
	}
	return a, nil
}

func (s *Albums) ReplaceAlbum(_ context.Context, id int64, album albummodel.Album) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return false, err
	}
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	album.ID = id
	s.rows[id] = album
	return true, nil
}

func (s *Albums) DeleteAlbum(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return false, err
	}
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func (s *Albums) QueryByOwner(_ context.Context, ownerID string) ([]albummodel.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return nil, err
	}
	out := []albummodel.Album{}
	for _, a := range s.sorted() {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Albums) QueryReviews(_ context.Context, albumID int64) ([]albummodel.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return nil, err
	}
	out := []albummodel.Review{}
	for _, r := range s.reviews {
		if r.AlbumID == albumID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Photos 内存照片表
type Photos struct {
	mu     sync.Mutex
	rows   map[int64]photomodel.Photo
	nextID int64
	Fail   error
}

var _ photodao.PhotoRepository = (*Photos)(nil)

func NewPhotos() *Photos {
	return &Photos{rows: map[int64]photomodel.Photo{}}
}

func (s *Photos) failure() error {
	if s.Fail != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreFailure, s.Fail)
	}
	return nil
}

func (s *Photos) sorted() []photomodel.Photo {
	out := make([]photomodel.Photo, 0, len(s.rows))
	for _, p := range s.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Photos) CreatePhoto(_ context.Context, photo *photomodel.Photo) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return 0, err
	}
	s.nextID++
	photo.ID = s.nextID
	s.rows[photo.ID] = *photo
	return photo.ID, nil
}

func (s *Photos) QueryByID(_ context.Context, id int64) (photomodel.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return photomodel.Photo{}, err
	}
	p, ok := s.rows[id]
	if !ok {
		return photomodel.Photo{}, fmt.Errorf("%w: photo %d", apperrors.ErrNotFound, id)
	}
	return p, nil
}

func (s *Photos) ReplacePhoto(_ context.Context, id int64, photo photomodel.Photo) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return false, err
	}
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	photo.ID = id
	s.rows[id] = photo
	return true, nil
}

func (s *Photos) QueryByAlbum(_ context.Context, albumID int64) ([]photomodel.Photo, error) {
	return s.filter(func(p photomodel.Photo) bool { return p.AlbumID == albumID })
}

func (s *Photos) QueryByUser(_ context.Context, userID string) ([]photomodel.Photo, error) {
	return s.filter(func(p photomodel.Photo) bool { return p.UserID == userID })
}

func (s *Photos) filter(keep func(photomodel.Photo) bool) ([]photomodel.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure(); err != nil {
		return nil, err
	}
	out := []photomodel.Photo{}
	for _, p := range s.sorted() {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
