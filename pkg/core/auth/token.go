package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"photo-share/pkg/common/config"
	apperrors "photo-share/pkg/common/errors"
)

// ErrSigningKeyUnavailable 签名密钥缺失，属于启动期致命错误
var ErrSigningKeyUnavailable = errors.New("jwt signing key unavailable")

// Claims 标准声明加用户标识
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// TokenManager 签发与校验无状态 bearer token，不访问任何存储
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg config.JWTAuthConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, ErrSigningKeyUnavailable
	}
	alg := cfg.SigningMethod
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt signing method %q", alg)
	}
	ttl := cfg.ExpireDuration
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(cfg.Secret),
		method: method,
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken 生成绑定 userID 的签名令牌
func (m *TokenManager) IssueToken(userID string) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrSigningKeyUnavailable
	}
	now := m.now()
	token := jwt.NewWithClaims(m.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken 校验签名、算法、签发方与有效期，任何失败都返回 ErrUnauthenticated
func (m *TokenManager) ResolveToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: missing token", apperrors.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("%w: invalid token", apperrors.ErrUnauthenticated)
	}
	return claims.UserID, nil
}
