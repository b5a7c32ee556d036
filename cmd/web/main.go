package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"photo-share/pkg/common/config"
	albumdao "photo-share/pkg/core/album/repository/dao/impl"
	albumservice "photo-share/pkg/core/album/service"
	"photo-share/pkg/core/auth"
	"photo-share/pkg/core/migrations"
	"photo-share/pkg/core/ownership"
	photodao "photo-share/pkg/core/photo/repository/dao/impl"
	photoservice "photo-share/pkg/core/photo/service"
	userdao "photo-share/pkg/core/user/repository/dao/impl"
	userservice "photo-share/pkg/core/user/service"
	"photo-share/pkg/web/handler"
	"photo-share/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		hlog.Fatalf("invalid configuration: %v", err)
	}

	// 初始化数据库连接
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		hlog.Fatalf("Failed to get database handle: %v", err)
	}
	if cfg.Database.Migrate {
		if err := migrations.Up(context.Background(), sqlDB); err != nil {
			hlog.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	rdb := cfg.InitRedis()
	defer rdb.Close()

	tokens, err := auth.NewTokenManager(cfg.Middleware.JWT)
	if err != nil {
		hlog.Fatalf("Failed to initialize token manager: %v", err)
	}

	// 注入到DAO层
	users := userdao.NewRedisUserRepository(rdb, cfg.Redis.KeyPrefix)
	albums := albumdao.NewGormAlbumRepository(db)
	photos := photodao.NewGormPhotoRepository(db)
	owners := ownership.NewCoordinator(users, albums, photos, cfg.Auth.BcryptCost)

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithMaxRequestBodySize(int(cfg.Middleware.Security.MaxBodySize)),
	)

	// 注册路由
	router.RegisterAPIs(h, cfg, router.Dependencies{
		Users:  userservice.NewUserService(users, owners, tokens),
		Albums: albumservice.NewAlbumService(albums, photos, owners, cfg.Pagination.PageSize),
		Photos: photoservice.NewPhotoService(photos, owners),
		Tokens: tokens,
		Probes: []handler.Probe{
			{Name: "mysql", IsCore: true, Check: sqlDB.PingContext},
			{Name: "redis", IsCore: true, Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
	})

	// 启动服务
	hlog.Infof("photo-share listening on %s (env=%s)", cfg.Server.Address, cfg.Env)
	h.Spin()
}
