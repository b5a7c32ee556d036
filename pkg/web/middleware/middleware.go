package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/hertz-contrib/cors"
	"golang.org/x/time/rate"
	"photo-share/pkg/common/config"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

// RequestIDMiddleware 沿用客户端传入的请求 ID，没有则生成
func RequestIDMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := strings.TrimSpace(string(ctx.GetHeader(RequestIDHeader)))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next(c)
	}
}

// LoggerMiddleware 结构化的请求日志记录
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		status := ctx.Response.StatusCode()
		line := fmt.Sprintf("| %3d | %13v | %15s | %-7s | %s | rid=%s",
			status,
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			ctx.GetString(RequestIDKey),
		)
		if len(ctx.Errors) > 0 {
			line += " | " + strings.Join(ctx.Errors.Errors(), "; ")
		}

		switch {
		case status >= 500:
			hlog.CtxErrorf(c, "%s", line)
		case status >= 400:
			hlog.CtxWarnf(c, "%s", line)
		default:
			hlog.CtxInfof(c, "%s", line)
		}
	}
}

/*
	启动时指定环境变量
	export APP_ENV=production
	go run ./cmd/web
*/

// RecoveryMiddleware 增强型异常捕获（带配置依赖版本）
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				// 获取调用堆栈
				stack := string(debug.Stack())

				hlog.CtxErrorf(c, "[PANIC RECOVERED] rid=%s %v\n%s", ctx.GetString(RequestIDKey), err, stack)

				// 生产环境只返回通用错误
				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(500, map[string]interface{}{
						"error": "internal server error",
					})
				} else {
					ctx.AbortWithStatusJSON(500, map[string]interface{}{
						"error": fmt.Sprintf("%v", err),
						"stack": strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 安全的跨域配置
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
			// 动态校验来源
			AllowOriginFunc: func(origin string) bool {
				for _, allowed := range corsConfig.AllowOrigins {
					if origin == allowed {
						return true
					}
				}
				for _, domain := range corsConfig.TrustedDomains {
					if strings.HasSuffix(origin, domain) {
						return true
					}
				}
				return false
			},
		},
	)
}

// RateLimitMiddleware 令牌桶限流，每 interval 补充 rate 个令牌
func RateLimitMiddleware(cfg config.RateLimitConfig) app.HandlerFunc {
	if cfg.Rate <= 0 {
		return func(c context.Context, ctx *app.RequestContext) { ctx.Next(c) }
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.Rate)/interval.Seconds()), cfg.Rate)

	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			hlog.CtxInfof(c, "[RATE LIMIT] path=%s", ctx.Path())
			ctx.AbortWithStatusJSON(429, map[string]interface{}{
				"error": "too many requests",
			})
			return
		}
		ctx.Next(c)
	}
}

// SecurityCheckMiddleware 全局安全校验中间件
func SecurityCheckMiddleware(cfg config.SecurityConfig) app.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedMethods))
	for _, m := range cfg.AllowedMethods {
		allowed[strings.ToUpper(m)] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		// 请求体大小限制
		if cfg.MaxBodySize > 0 && int64(ctx.Request.Header.ContentLength()) > cfg.MaxBodySize {
			securityResponse(c, ctx, "request body exceeds max size", 413)
			return
		}

		// 检查HTTP方法
		if len(allowed) > 0 && !allowed[string(ctx.Method())] {
			securityResponse(c, ctx, "method not allowed", 405)
			return
		}

		ctx.Next(c)
	}
}

// 安全响应统一处理
func securityResponse(c context.Context, ctx *app.RequestContext, msg string, status int) {
	hlog.CtxWarnf(c, "SecurityAlert[%d] %s %s: %s", status, ctx.Method(), ctx.Path(), msg)
	ctx.AbortWithStatusJSON(status, map[string]interface{}{
		"error": msg,
	})
}
