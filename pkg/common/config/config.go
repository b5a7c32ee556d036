package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ServerConfig struct {
	Address string `json:"address"`
}

type SecurityConfig struct {
	MaxBodySize    int64    `json:"maxBodySize"` // 单位：字节
	AllowedMethods []string `json:"allowedMethods"`
}

type CORSConfig struct {
	AllowOrigins     []string      `json:"allowOrigins"`
	AllowMethods     []string      `json:"allowMethods"`
	AllowHeaders     []string      `json:"allowHeaders"`
	ExposeHeaders    []string      `json:"exposeHeaders"`
	AllowCredentials bool          `json:"allowCredentials"`
	MaxAge           time.Duration `json:"maxAge"`
	TrustedDomains   []string      `json:"trustedDomains"`
}

type JWTAuthConfig struct {
	Secret         string        `json:"secret"`
	ExpireDuration time.Duration `json:"expireDuration"`
	Issuer         string        `json:"issuer"`
	SigningMethod  string        `json:"signingMethod"`
}

type RateLimitConfig struct {
	Rate     int           `json:"rate"`
	Interval time.Duration `json:"interval"`
}

type MiddlewareConfig struct {
	Security  SecurityConfig  `json:"security"`
	JWT       JWTAuthConfig   `json:"jwt"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rateLimit"`
}

// DatabaseConfig MySQL 连接配置（相册、照片、评论）
type DatabaseConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DBName      string `json:"dbname"`
	UseUnixSock bool   `json:"useUnixSock"` // host 存储 socket 路径
	MinPoolSize int    `json:"minPoolSize"`
	MaxPoolSize int    `json:"maxPoolSize"`
	LogLevel    string `json:"logLevel"` // GORM日志级别
	Migrate     bool   `json:"migrate"`  // 启动时执行 goose 迁移
}

// RedisConfig 用户文档存储
type RedisConfig struct {
	Addr      string        `json:"addr"`
	Username  string        `json:"username"`
	Password  string        `json:"password"`
	DB        int           `json:"db"`
	PoolSize  int           `json:"poolSize"`
	KeyPrefix string        `json:"keyPrefix"`
	Timeout   time.Duration `json:"timeout"`
}

type AuthConfig struct {
	BcryptCost int `json:"bcryptCost"`
}

type PaginationConfig struct {
	PageSize int `json:"pageSize"`
}

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Redis      RedisConfig      `json:"redis"`
	Auth       AuthConfig       `json:"auth"`
	Pagination PaginationConfig `json:"pagination"`
	Middleware MiddlewareConfig `json:"middleware"`
	Env        string           `json:"env"` // 环境标识
}

var defaultConfig = Config{
	Server: ServerConfig{
		Address: ":8000",
	},
	Database: DatabaseConfig{
		Host:        "localhost",
		Port:        3306,
		Username:    "root",
		Password:    "root",
		DBName:      "photos",
		UseUnixSock: false,
		MinPoolSize: 5,
		MaxPoolSize: 10,
		LogLevel:    "warn",
		Migrate:     true,
	},
	Redis: RedisConfig{
		Addr:      "localhost:6379",
		PoolSize:  10,
		KeyPrefix: "photo-share",
		Timeout:   3 * time.Second,
	},
	Auth: AuthConfig{
		BcryptCost: 8,
	},
	Pagination: PaginationConfig{
		PageSize: 10,
	},
	Middleware: MiddlewareConfig{
		Security: SecurityConfig{
			MaxBodySize:    10 << 20, // 10MB
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		},
		JWT: JWTAuthConfig{
			Secret:         "dev-secret-change-me-in-production", // 开发环境默认密钥
			ExpireDuration: 24 * time.Hour,
			Issuer:         "photo-share",
			SigningMethod:  "HS256",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-Id"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Rate:     50,
			Interval: time.Second,
		},
	},
	Env: "development",
}

// Default 返回默认配置的副本
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}

// IsProd 判断当前是否生产环境
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Validate 检查启动必需的配置项
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Middleware.JWT.Secret) == "" {
		return errors.New("jwt secret must not be empty")
	}
	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.Pagination.PageSize)
	}
	if c.Auth.BcryptCost <= 0 {
		return fmt.Errorf("bcrypt cost must be positive, got %d", c.Auth.BcryptCost)
	}
	return nil
}

// Load 加载配置（优先级：环境变量 > 配置文件 > 默认值）
func Load() *Config {
	config := defaultConfig

	if configPath := getConfigPath(); configPath != "" {
		if err := loadFromFile(&config, configPath); err != nil {
			hlog.Warnf("Failed to load config file %s: %v", configPath, err)
		}
	}

	loadFromEnv(&config)

	return &config
}

// getConfigPath 获取配置文件路径
func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	searchPaths := []string{
		"./config.json",
		"../config.json",
		"/etc/photo-share/config.json",
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, config)
}

// loadFromEnv 从环境变量加载配置
func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		config.Server.Address = v
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		config.Env = v
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Middleware.Security.MaxBodySize = size
		}
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil {
			config.Middleware.RateLimit.Rate = rate
		}
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.Middleware.CORS.AllowOrigins = splitEnvList(v)
	}

	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Pagination.PageSize = size
		}
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.Auth.BcryptCost = cost
		}
	}

	/****** JWT ******/
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Middleware.JWT.Secret = v
	}

	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			config.Middleware.JWT.ExpireDuration = duration
		} else {
			hlog.Warnf("Invalid JWT_EXPIRATION format: %v", err)
		}
	}

	if v := os.Getenv("JWT_ISSUER"); v != "" {
		config.Middleware.JWT.Issuer = v
	}

	if v := os.Getenv("JWT_ALGORITHM"); v != "" {
		algorithm := strings.ToLower(strings.ReplaceAll(v, " ", ""))

		validAlgorithms := map[string]bool{
			"hs256": true,
			"hs384": true,
			"hs512": true,
		}

		if validAlgorithms[algorithm] {
			config.Middleware.JWT.SigningMethod = strings.ToUpper(algorithm)
		} else {
			hlog.Warnf("Unsupported JWT algorithm: %s", v)
		}
	}

	/****** MySQL ******/
	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}

	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Database.Port = port
		}
	}

	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.Username = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}

	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}

	if v := os.Getenv("DB_SOCKET"); v != "" {
		config.Database.UseUnixSock = parseBool(v)
	}

	if v := os.Getenv("DB_MIN_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MinPoolSize = size
		}
	}

	if v := os.Getenv("DB_MAX_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MaxPoolSize = size
		}
	}

	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		config.Database.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("DB_MIGRATE"); v != "" {
		config.Database.Migrate = parseBool(v)
	}

	/****** Redis ******/
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}

	if v := os.Getenv("REDIS_USERNAME"); v != "" {
		config.Redis.Username = v
	}

	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			config.Redis.DB = db
		}
	}

	if v := os.Getenv("REDIS_KEY_PREFIX"); v != "" {
		config.Redis.KeyPrefix = v
	}
}

// 分割环境变量列表（支持逗号分隔的字符串）
func splitEnvList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(value string) bool {
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}
