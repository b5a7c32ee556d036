package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	"photo-share/pkg/core/album/model"
	"photo-share/pkg/core/ownership"
	photomodel "photo-share/pkg/core/photo/model"
	usermodel "photo-share/pkg/core/user/model"
	"photo-share/pkg/testsupport/memstore"
)

type fixture struct {
	svc    AlbumService
	users  *memstore.Users
	albums *memstore.Albums
	photos *memstore.Photos
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	users := memstore.NewUsers()
	albums := memstore.NewAlbums()
	photos := memstore.NewPhotos()
	require.NoError(t, users.CreateUser(context.Background(), usermodel.User{ID: "x", UserID: "u1"}))
	owners := ownership.NewCoordinator(users, albums, photos, 4)
	return fixture{
		svc:    NewAlbumService(albums, photos, owners, 10),
		users:  users,
		albums: albums,
		photos: photos,
	}
}

func albumRecord(owner, name string) schema.Record {
	return schema.Record{"ownerid": owner, "name": name, "date": "2019-06-01"}
}

func TestCreate_AttachesOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := albumRecord("u1", "beach")
	rec["id"] = float64(999)
	rec["bogus"] = "dropped"

	album, err := f.svc.Create(ctx, rec)
	require.NoError(t, err)
	assert.EqualValues(t, 1, album.ID, "client supplied id must be ignored")
	assert.Nil(t, album.Email)

	u, err := f.users.FindByUserID(ctx, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, u.Albums)
	assert.Empty(t, u.Photos)
}

func TestCreate_UnknownOwnerStillCreates(t *testing.T) {
	f := newFixture(t)

	album, err := f.svc.Create(context.Background(), albumRecord("ghost", "orphan"))
	require.NoError(t, err)

	stored, err := f.albums.QueryByID(context.Background(), album.ID)
	require.NoError(t, err)
	assert.Equal(t, "ghost", stored.OwnerID)
}

func TestCreate_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), schema.Record{"ownerid": "u1", "name": "n"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = f.svc.Create(context.Background(), schema.Record{"ownerid": "u1", "name": "", "date": "d"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	n, err := f.albums.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGet_RoundTripWithEmptyCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := albumRecord("u1", "beach")
	rec["email"] = "u1@example.com"
	created, err := f.svc.Create(ctx, rec)
	require.NoError(t, err)

	detail, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "beach", detail.Name)
	assert.Equal(t, "u1", detail.OwnerID)
	assert.Equal(t, "2019-06-01", detail.Date)
	require.NotNil(t, detail.Email)
	assert.Equal(t, "u1@example.com", *detail.Email)
	assert.NotNil(t, detail.Reviews)
	assert.Empty(t, detail.Reviews)
	assert.NotNil(t, detail.Photos)
	assert.Empty(t, detail.Photos)
}

func TestGet_WithReviewsAndPhotos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, albumRecord("u1", "beach"))
	require.NoError(t, err)
	f.albums.AddReview(model.Review{UserID: "u2", AlbumID: created.ID, Rating: 4})
	_, err = f.photos.CreatePhoto(ctx, &photomodel.Photo{UserID: "u1", AlbumID: created.ID, Data: "x"})
	require.NoError(t, err)
	_, err = f.photos.CreatePhoto(ctx, &photomodel.Photo{UserID: "u1", AlbumID: created.ID + 1, Data: "y"})
	require.NoError(t, err)

	detail, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Reviews, 1)
	assert.Len(t, detail.Photos, 1)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReplaceAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := albumRecord("u1", "beach")
	rec["email"] = "old@example.com"
	created, err := f.svc.Create(ctx, rec)
	require.NoError(t, err)

	// 整体替换：缺省的 email 被清空
	require.NoError(t, f.svc.Replace(ctx, created.ID, albumRecord("u1", "mountains")))
	stored, err := f.albums.QueryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mountains", stored.Name)
	assert.Nil(t, stored.Email)

	err = f.svc.Replace(ctx, 77, albumRecord("u1", "x"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = f.svc.Replace(ctx, created.ID, schema.Record{"name": "x"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), apperrors.ErrNotFound)
}

func TestList_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 25; i++ {
		_, err := f.albums.CreateAlbum(ctx, &model.Album{OwnerID: "u1", Name: fmt.Sprintf("a%d", i), Date: "d"})
		require.NoError(t, err)
	}

	page, err := f.svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 10, page.PageSize)
	assert.EqualValues(t, 25, page.TotalCount)
	require.Len(t, page.Albums, 10)
	assert.EqualValues(t, 11, page.Albums[0].ID)
	assert.Len(t, page.Links, 4)

	page, err = f.svc.List(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 3, page.PageNumber)
	assert.Len(t, page.Albums, 5)
	assert.Equal(t, "/albums?page=2", page.Links["prevPage"])

	page, err = f.svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, "/albums?page=2", page.Links["nextPage"])
}

func TestList_Empty(t *testing.T) {
	f := newFixture(t)

	page, err := f.svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 1, page.TotalPages)
	assert.NotNil(t, page.Albums)
	assert.Empty(t, page.Links)
}

func TestList_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.albums.Fail = errors.New("gone away")

	_, err := f.svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}
