package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	albummodel "photo-share/pkg/core/album/model"
	"photo-share/pkg/core/auth"
	"photo-share/pkg/core/ownership"
	photomodel "photo-share/pkg/core/photo/model"
	"photo-share/pkg/core/user/model"
	"photo-share/pkg/core/user/repository/dao"
)

// 注册与登录请求的字段要求
var (
	RegisterSchema = schema.Schema{
		"userID":   {Required: true},
		"email":    {Required: true},
		"password": {Required: true},
	}
	LoginSchema = schema.Schema{
		"userID":   {Required: true},
		"password": {Required: true},
	}
)

// TokenIssuer 登录成功后签发令牌
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

type UserService interface {
	Register(ctx context.Context, record schema.Record) (model.User, error)
	Login(ctx context.Context, record schema.Record) (string, error)
	Profile(ctx context.Context, userID string) (model.User, error)
	Albums(ctx context.Context, userID string) ([]albummodel.Album, error)
	Photos(ctx context.Context, userID string) ([]photomodel.Photo, error)
}

type userService struct {
	users  dao.UserRepository
	owners *ownership.Coordinator
	tokens TokenIssuer
}

func NewUserService(users dao.UserRepository, owners *ownership.Coordinator, tokens TokenIssuer) UserService {
	return &userService{users: users, owners: owners, tokens: tokens}
}

type credentials struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeCredentials(s schema.Schema, record schema.Record) (credentials, error) {
	if !s.Validate(record) {
		return credentials{}, fmt.Errorf("%w: missing %v", apperrors.ErrInvalidInput, s.Missing(record))
	}
	var c credentials
	if err := s.Extract(record).Decode(&c); err != nil {
		return credentials{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return c, nil
}

func (s *userService) Register(ctx context.Context, record schema.Record) (model.User, error) {
	c, err := decodeCredentials(RegisterSchema, record)
	if err != nil {
		return model.User{}, err
	}
	user, err := s.owners.RegisterUser(ctx, ownership.Registration{
		UserID:   c.UserID,
		Email:    c.Email,
		Password: c.Password,
	})
	if err != nil {
		return model.User{}, err
	}
	hlog.CtxInfof(ctx, "user registered userID=%s", user.UserID)
	return user, nil
}

// Login 用户不存在与密码错误返回同一种错误，避免探测用户名
func (s *userService) Login(ctx context.Context, record schema.Record) (string, error) {
	c, err := decodeCredentials(LoginSchema, record)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByUserID(ctx, c.UserID, true)
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthenticated)
	case err != nil:
		return "", err
	}

	if !auth.VerifyPassword(c.Password, user.Password) {
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthenticated)
	}

	token, err := s.tokens.IssueToken(user.UserID)
	if err != nil {
		// 未归类错误，handler 按 500 处理
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (model.User, error) {
	return s.users.FindByUserID(ctx, userID, false)
}

func (s *userService) Albums(ctx context.Context, userID string) ([]albummodel.Album, error) {
	return s.owners.ListOwnedAlbums(ctx, userID)
}

func (s *userService) Photos(ctx context.Context, userID string) ([]photomodel.Photo, error) {
	return s.owners.ListOwnedPhotos(ctx, userID)
}
