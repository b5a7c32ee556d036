// seed 向用户文档库写入初始用户 init_user1..N，密码均为 "password"
package main

import (
	"context"
	"flag"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"photo-share/pkg/common/config"
	"photo-share/pkg/core/ownership"
	userdao "photo-share/pkg/core/user/repository/dao/impl"
)

func main() {
	count := flag.Int("users", 12, "number of init_user accounts to create")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		hlog.Fatalf("invalid configuration: %v", err)
	}

	rdb := cfg.InitRedis()
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		hlog.Fatalf("redis unreachable at %s: %v", cfg.Redis.Addr, err)
	}

	// 注册只访问用户文档库
	users := userdao.NewRedisUserRepository(rdb, cfg.Redis.KeyPrefix)
	owners := ownership.NewCoordinator(users, nil, nil, cfg.Auth.BcryptCost)

	created, err := owners.Seed(ctx, ownership.SeedRegistrations(*count))
	if err != nil {
		hlog.Fatalf("seeding stopped after %d users: %v", created, err)
	}
	hlog.Infof("seeded %d new users (%d requested)", created, *count)
}
