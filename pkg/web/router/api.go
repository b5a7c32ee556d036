package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"photo-share/pkg/common/config"
	albumservice "photo-share/pkg/core/album/service"
	photoservice "photo-share/pkg/core/photo/service"
	userservice "photo-share/pkg/core/user/service"
	"photo-share/pkg/web/handler"
	"photo-share/pkg/web/middleware"
)

// Dependencies 路由所需的业务服务
type Dependencies struct {
	Users  userservice.UserService
	Albums albumservice.AlbumService
	Photos photoservice.PhotoService
	Tokens middleware.TokenResolver
	Probes []handler.Probe
}

// RegisterAPIs 注册所有API路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, deps Dependencies) {
	// 初始化Handler实例
	healthHandler := handler.NewHealthCheckHandler(cfg.Redis.Timeout, deps.Probes...)
	albumHandler := handler.NewAlbumHandler(deps.Albums)
	photoHandler := handler.NewPhotoHandler(deps.Photos)
	userHandler := handler.NewUserHandler(deps.Users)

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(cfg.Middleware.RateLimit),
	)

	// 未匹配路由与资源不存在返回同样的 404
	h.NoRoute(handler.NotFound)

	// 基础接口组
	h.GET("/health", healthHandler.AdvancedHealthCheck)

	albums := h.Group("/albums")
	{
		albums.GET("", albumHandler.List)
		albums.POST("", albumHandler.Create)
		albums.GET("/:id", albumHandler.Get)
		albums.PUT("/:id", albumHandler.Replace)
		albums.DELETE("/:id", albumHandler.Delete)
	}

	photos := h.Group("/photos")
	{
		photos.POST("", photoHandler.Create)
		photos.GET("/:id", photoHandler.Get)
		photos.PUT("/:id", photoHandler.Replace)
	}

	users := h.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.POST("/login", userHandler.Login)

		// 需要身份认证且只能访问自己的资源
		owned := users.Group("/:userID",
			middleware.RequireAuthentication(deps.Tokens),
			middleware.RequireOwner("userID"),
		)
		owned.GET("", userHandler.Profile)
		owned.GET("/albums", userHandler.Albums)
		owned.GET("/photos", userHandler.Photos)
	}
}
