package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// WrapGormError 将底层数据库错误转变为业务可识别错误
//   - gorm.ErrRecordNotFound → ErrNotFound
//   - 唯一约束冲突 → ErrConflict
//   - 其他 → ErrStoreFailure（保留原始信息用于日志）
func WrapGormError(rawErr error) error {
	if rawErr == nil {
		return nil
	}

	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return ErrNotFound
	case IsDuplicateError(rawErr):
		return ErrConflict
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case 1045, 1049, 1146: // 认证失败、库不存在、表不存在
			return fmt.Errorf("%w: mysql %d: %s", ErrStoreFailure, mysqlErr.Number, mysqlErr.Message)
		}
	}

	return fmt.Errorf("%w: %v", ErrStoreFailure, rawErr)
}

// WrapRedisError redis.Nil 视为不存在，其余为存储故障
func WrapRedisError(rawErr error) error {
	if rawErr == nil {
		return nil
	}
	if errors.Is(rawErr, redis.Nil) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreFailure, rawErr)
}

// IsDuplicateError 判断是否为重复记录错误（mysql 1062 / gorm 翻译后的 ErrDuplicatedKey）
func IsDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey)
}
