package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	"photo-share/pkg/core/ownership"
	usermodel "photo-share/pkg/core/user/model"
	"photo-share/pkg/testsupport/memstore"
)

func newTestService(t *testing.T) (PhotoService, *memstore.Users, *memstore.Photos) {
	t.Helper()
	users := memstore.NewUsers()
	photos := memstore.NewPhotos()
	require.NoError(t, users.CreateUser(context.Background(), usermodel.User{ID: "x", UserID: "u1"}))
	owners := ownership.NewCoordinator(users, memstore.NewAlbums(), photos, 4)
	return NewPhotoService(photos, owners), users, photos
}

func photoRecord(user string, album float64, caption string) schema.Record {
	rec := schema.Record{"userid": user, "albumid": album, "data": "aGVsbG8="}
	if caption != "" {
		rec["caption"] = caption
	}
	return rec
}

func TestCreate(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	photo, err := svc.Create(ctx, photoRecord("u1", 3, "sunset"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, photo.ID)
	assert.EqualValues(t, 3, photo.AlbumID)

	u, err := users.FindByUserID(ctx, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, u.Photos)
	assert.Empty(t, u.Albums)
}

func TestCreate_AttachFailureIsNotFatal(t *testing.T) {
	svc, users, photos := newTestService(t)
	users.Fail = errors.New("redis down")

	photo, err := svc.Create(context.Background(), photoRecord("u1", 3, ""))
	require.NoError(t, err)

	_, err = photos.QueryByID(context.Background(), photo.ID)
	assert.NoError(t, err)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), schema.Record{"userid": "u1", "albumid": float64(3)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(context.Background(), schema.Record{"userid": "u1", "albumid": "three", "data": "x"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReplace_RejectsOwnershipChange(t *testing.T) {
	svc, _, photos := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, photoRecord("u1", 3, "before"))
	require.NoError(t, err)

	_, err = svc.Replace(ctx, created.ID, photoRecord("u1", 4, "moved"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Replace(ctx, created.ID, photoRecord("u2", 3, "stolen"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, err := photos.QueryByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Caption)
	assert.Equal(t, "before", *stored.Caption)
}

func TestReplace_KeepsOwnershipChangesOtherFields(t *testing.T) {
	svc, _, photos := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, photoRecord("u1", 3, "before"))
	require.NoError(t, err)

	rec := photoRecord("u1", 3, "after")
	rec["data"] = "bmV3"
	updated, err := svc.Replace(ctx, created.ID, rec)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	stored, err := photos.QueryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)
	assert.EqualValues(t, 3, stored.AlbumID)
	assert.Equal(t, "bmV3", stored.Data)
	require.NotNil(t, stored.Caption)
	assert.Equal(t, "after", *stored.Caption)
}

func TestReplace_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Replace(context.Background(), 9, photoRecord("u1", 3, ""))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGet(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	created, err := svc.Create(ctx, photoRecord("u1", 3, ""))
	require.NoError(t, err)
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Caption)
}
