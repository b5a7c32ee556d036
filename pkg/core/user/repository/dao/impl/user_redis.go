package dao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/core/user/model"
	"photo-share/pkg/core/user/repository/dao"
)

// 只在用户文档存在时追加，返回 -1 表示用户不存在
var appendScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('RPUSH', KEYS[2], ARGV[1])
`)

// userDocument 落库结构；资源引用列表单独存放在 Redis list 中
type userDocument struct {
	ID       string `json:"_id"`
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RedisUserRepository struct {
	client redis.UniversalClient
	prefix string
}

var _ dao.UserRepository = (*RedisUserRepository)(nil)

func NewRedisUserRepository(client redis.UniversalClient, prefix string) *RedisUserRepository {
	return &RedisUserRepository{client: client, prefix: prefix}
}

// 每类 key 使用独立的命名段，userID 只出现在末尾，任何 userID 都无法拼出其他用户或其他类型的 key
func (r *RedisUserRepository) key(kind, userID string) string {
	if r.prefix == "" {
		return kind + ":" + userID
	}
	return r.prefix + ":" + kind + ":" + userID
}

func (r *RedisUserRepository) userKey(userID string) string { return r.key("user", userID) }
func (r *RedisUserRepository) albumsKey(userID string) string { return r.key("user-albums", userID) }
func (r *RedisUserRepository) photosKey(userID string) string { return r.key("user-photos", userID) }

func (r *RedisUserRepository) FindByUserID(ctx context.Context, userID string, includePassword bool) (model.User, error) {
	raw, err := r.client.Get(ctx, r.userKey(userID)).Bytes()
	if err != nil {
		return model.User{}, fmt.Errorf("%w: user lookup failed", apperrors.WrapRedisError(err))
	}

	var doc userDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return model.User{}, fmt.Errorf("%w: corrupt user document %s: %v", apperrors.ErrStoreFailure, userID, err)
	}

	pipe := r.client.Pipeline()
	albumsCmd := pipe.LRange(ctx, r.albumsKey(userID), 0, -1)
	photosCmd := pipe.LRange(ctx, r.photosKey(userID), 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return model.User{}, fmt.Errorf("%w: reference lookup failed", apperrors.WrapRedisError(err))
	}

	albums, err := parseIDs(albumsCmd.Val())
	if err != nil {
		return model.User{}, fmt.Errorf("%w: album references of %s: %v", apperrors.ErrStoreFailure, userID, err)
	}
	photos, err := parseIDs(photosCmd.Val())
	if err != nil {
		return model.User{}, fmt.Errorf("%w: photo references of %s: %v", apperrors.ErrStoreFailure, userID, err)
	}

	user := model.User{
		ID:       doc.ID,
		UserID:   doc.UserID,
		Email:    doc.Email,
		Password: doc.Password,
		Albums:   albums,
		Photos:   photos,
	}
	if !includePassword {
		user = user.WithoutPassword()
	}
	return user, nil
}

func (r *RedisUserRepository) IsUserIDExists(ctx context.Context, userID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.userKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: failed to check userID", apperrors.WrapRedisError(err))
	}
	return n > 0, nil
}

// CreateUser SETNX 写入，已存在时返回 ErrConflict 且不覆盖
func (r *RedisUserRepository) CreateUser(ctx context.Context, user model.User) error {
	payload, err := sonic.Marshal(userDocument{
		ID:       user.ID,
		UserID:   user.UserID,
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return fmt.Errorf("encode user document: %w", err)
	}

	created, err := r.client.SetNX(ctx, r.userKey(user.UserID), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: user creation failed", apperrors.WrapRedisError(err))
	}
	if !created {
		return fmt.Errorf("%w: userID %q", apperrors.ErrConflict, user.UserID)
	}
	return nil
}

func (r *RedisUserRepository) AppendAlbum(ctx context.Context, userID string, albumID int64) error {
	return r.appendRef(ctx, userID, r.albumsKey(userID), albumID)
}

func (r *RedisUserRepository) AppendPhoto(ctx context.Context, userID string, photoID int64) error {
	return r.appendRef(ctx, userID, r.photosKey(userID), photoID)
}

func (r *RedisUserRepository) appendRef(ctx context.Context, userID, listKey string, id int64) error {
	n, err := appendScript.Run(ctx, r.client, []string{r.userKey(userID), listKey}, id).Int64()
	if err != nil {
		return fmt.Errorf("%w: reference append failed", apperrors.WrapRedisError(err))
	}
	if n < 0 {
		return fmt.Errorf("%w: user %q", apperrors.ErrNotFound, userID)
	}
	return nil
}

func parseIDs(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
