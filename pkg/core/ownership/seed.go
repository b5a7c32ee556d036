package ownership

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
)

// SeedPassword 初始用户的明文密码
const SeedPassword = "password"

// SeedRegistrations 生成 init_user1..n
func SeedRegistrations(n int) []Registration {
	regs := make([]Registration, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("init_user%d", i)
		regs = append(regs, Registration{
			UserID:   id,
			Email:    id + "@gmail.com",
			Password: SeedPassword,
		})
	}
	return regs
}

// Seed 逐个注册，已存在的跳过，可重复执行。返回新建数量。
func (c *Coordinator) Seed(ctx context.Context, regs []Registration) (int, error) {
	created := 0
	for _, reg := range regs {
		_, err := c.RegisterUser(ctx, reg)
		switch {
		case apperrors.Is(err, apperrors.ErrConflict):
			hlog.CtxInfof(ctx, "seed: %s already present", reg.UserID)
		case err != nil:
			return created, fmt.Errorf("seed %s: %w", reg.UserID, err)
		default:
			created++
		}
	}
	return created, nil
}
