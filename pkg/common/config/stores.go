package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN 根据配置生成 MySQL 连接串
func (c *Config) DSN() string {
	dsn := mysqldriver.NewConfig()
	dsn.User = c.Database.Username
	dsn.Passwd = c.Database.Password
	dsn.DBName = c.Database.DBName
	dsn.ParseTime = true
	dsn.Loc = time.Local
	// 更新值未变化时也返回匹配行数，否则 PUT 相同内容会被当作 404
	dsn.ClientFoundRows = true
	dsn.Params = map[string]string{"charset": "utf8mb4"}

	if c.Database.UseUnixSock {
		dsn.Net = "unix"
		dsn.Addr = c.Database.Host
	} else {
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	}
	return dsn.FormatDSN()
}

// GormConfig 所有写操作都是单语句，关闭默认事务
func (c *Config) GormConfig() *gorm.Config {
	gormConfig := &gorm.Config{SkipDefaultTransaction: true}
	switch c.Database.LogLevel {
	case "silent":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	case "error":
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	case "warn":
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	case "info":
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	return gormConfig
}

func (c *Config) InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(c.DSN()), c.GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(c.Database.MinPoolSize)
	sqlDB.SetMaxOpenConns(c.Database.MaxPoolSize)

	return db, nil
}

// InitRedis 用户文档存储客户端；不做自动重试，失败直接返回给请求
func (c *Config) InitRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         c.Redis.Addr,
		Username:     c.Redis.Username,
		Password:     c.Redis.Password,
		DB:           c.Redis.DB,
		PoolSize:     c.Redis.PoolSize,
		DialTimeout:  c.Redis.Timeout,
		ReadTimeout:  c.Redis.Timeout,
		WriteTimeout: c.Redis.Timeout,
		MaxRetries:   -1,
	})
}
