package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/core/auth"
)

// IdentityKey 已认证的 userID 在请求上下文中的键
const IdentityKey = "user"

// TokenResolver 由 auth.TokenManager 实现
type TokenResolver interface {
	ResolveToken(token string) (string, error)
}

// RequireAuthentication 校验 Authorization: Bearer <token>，失败返回 401
func RequireAuthentication(tokens TokenResolver) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		userID, err := tokens.ResolveToken(bearerToken(ctx))
		if err != nil {
			_ = ctx.Error(apperrors.Public(err, IdentityKey))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, map[string]interface{}{
				"error": "Invalid authentication token provided.",
			})
			return
		}
		ctx.Set(IdentityKey, userID)
		ctx.Next(c)
	}
}

// RequireOwner 路径参数中的用户必须与令牌身份一致，不查询用户是否存在
func RequireOwner(param string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		identity := ctx.GetString(IdentityKey)
		if err := auth.Authorize(identity, ctx.Param(param)); err != nil {
			hlog.CtxInfof(c, "access denied: %v", err)
			_ = ctx.Error(apperrors.Public(err, param))
			ctx.AbortWithStatusJSON(http.StatusForbidden, map[string]interface{}{
				"error": "Unauthorized to access that resource",
			})
			return
		}
		ctx.Next(c)
	}
}

func bearerToken(ctx *app.RequestContext) string {
	parts := strings.Fields(string(ctx.GetHeader("Authorization")))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
