package dao

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/core/photo/model"
)

func newMockRepo(t *testing.T) (*GormPhotoRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewGormPhotoRepository(db), mock
}

var photoColumns = []string{"id", "userid", "albumid", "caption", "data"}

func TestCreatePhoto(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO `photos`").WillReturnResult(sqlmock.NewResult(21, 1))

	id, err := repo.CreatePhoto(context.Background(), &model.Photo{UserID: "u1", AlbumID: 3, Data: "aGk="})
	require.NoError(t, err)
	assert.EqualValues(t, 21, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT \\* FROM `photos` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(photoColumns).AddRow(21, "u1", 3, "sunset", "aGk="))
	mock.ExpectQuery("SELECT \\* FROM `photos` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(photoColumns))

	photo, err := repo.QueryByID(context.Background(), 21)
	require.NoError(t, err)
	assert.EqualValues(t, 3, photo.AlbumID)
	require.NotNil(t, photo.Caption)
	assert.Equal(t, "sunset", *photo.Caption)

	_, err = repo.QueryByID(context.Background(), 22)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplacePhoto(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE `photos` SET").WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ReplacePhoto(context.Background(), 21, model.Photo{UserID: "u1", AlbumID: 3, Data: "x"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByAlbumAndUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT \\* FROM `photos` WHERE albumid = \\?").
		WillReturnRows(sqlmock.NewRows(photoColumns).AddRow(1, "u1", 3, nil, "a").AddRow(2, "u1", 3, nil, "b"))
	mock.ExpectQuery("SELECT \\* FROM `photos` WHERE userid = \\?").
		WillReturnRows(sqlmock.NewRows(photoColumns))

	byAlbum, err := repo.QueryByAlbum(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, byAlbum, 2)

	byUser, err := repo.QueryByUser(context.Background(), "u9")
	require.NoError(t, err)
	assert.NotNil(t, byUser)
	assert.Empty(t, byUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO `photos`").WillReturnError(errors.New("disk full"))

	_, err := repo.CreatePhoto(context.Background(), &model.Photo{UserID: "u1", AlbumID: 3, Data: "x"})
	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
}
