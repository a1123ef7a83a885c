package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"

	IdentityLocal = "local"
	IdentityDemo  = "demo"
)

type Config struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	DBPath  string `yaml:"db_path"`

	Storage  StorageConfig  `yaml:"storage"`
	Identity IdentityConfig `yaml:"identity"`

	// NoticeTTL is how long a notification stays visible
	NoticeTTL time.Duration `yaml:"notice_ttl"`
	// SearchDelay is the typeahead debounce delay
	SearchDelay time.Duration `yaml:"search_delay"`
	// ClientIdleTimeout evicts client contexts nobody has used for this long
	ClientIdleTimeout time.Duration `yaml:"client_idle_timeout"`
}

type StorageConfig struct {
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	RedisPrefix   string        `yaml:"redis_prefix"`
	RedisTTL      time.Duration `yaml:"redis_ttl"`
}

type IdentityConfig struct {
	Backend   string        `yaml:"backend"`
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	DemoDelay time.Duration `yaml:"demo_delay"`

	// Admin account seeded into the local backend at startup
	AdminName     string `yaml:"admin_name"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:    "8080",
		GinMode: "debug",
		DBPath:  "kacip.db",
		Storage: StorageConfig{
			Backend:     StorageSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "kacip:",
			RedisTTL:    30 * 24 * time.Hour,
		},
		Identity: IdentityConfig{
			Backend:       IdentityLocal,
			JWTSecret:     "kacip_storefront_secret_2024",
			TokenTTL:      24 * time.Hour,
			DemoDelay:     time.Second,
			AdminName:     "Admin User",
			AdminEmail:    "admin@kacip.com",
			AdminPassword: "admin123",
		},
		NoticeTTL:         3 * time.Second,
		SearchDelay:       300 * time.Millisecond,
		ClientIdleTimeout: 30 * time.Minute,
	}
}

// Load reads the optional YAML file at path, then applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageSQLite, StorageRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Identity.Backend {
	case IdentityLocal, IdentityDemo:
	default:
		return fmt.Errorf("unknown identity backend %q", c.Identity.Backend)
	}
	if c.Identity.Backend == IdentityLocal && c.Identity.JWTSecret == "" {
		return errors.New("jwt secret is required for the local identity backend")
	}
	return nil
}

func applyEnvOverrides(c *Config) error {
	c.Port = getEnv("PORT", c.Port)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.DBPath = getEnv("DB_PATH", c.DBPath)

	c.Storage.Backend = getEnv("STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.RedisAddr = getEnv("REDIS_ADDR", c.Storage.RedisAddr)
	c.Storage.RedisPassword = getEnv("REDIS_PASSWORD", c.Storage.RedisPassword)
	c.Storage.RedisPrefix = getEnv("REDIS_PREFIX", c.Storage.RedisPrefix)

	c.Identity.Backend = getEnv("IDENTITY_BACKEND", c.Identity.Backend)
	c.Identity.JWTSecret = getEnv("JWT_SECRET", c.Identity.JWTSecret)
	c.Identity.AdminEmail = getEnv("ADMIN_EMAIL", c.Identity.AdminEmail)
	c.Identity.AdminPassword = getEnv("ADMIN_PASSWORD", c.Identity.AdminPassword)

	var err error
	if c.Storage.RedisDB, err = getEnvInt("REDIS_DB", c.Storage.RedisDB); err != nil {
		return err
	}
	if c.Identity.TokenTTL, err = getEnvDuration("TOKEN_TTL", c.Identity.TokenTTL); err != nil {
		return err
	}
	if c.SearchDelay, err = getEnvDuration("SEARCH_DELAY", c.SearchDelay); err != nil {
		return err
	}
	if c.NoticeTTL, err = getEnvDuration("NOTICE_TTL", c.NoticeTTL); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// InitDB opens the application database. Each store migrates its own tables.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Printf("✅ Database connected: %s", path)
	return db, nil
}
