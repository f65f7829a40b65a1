// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" env-default:":5000" env-description:"HTTP listen address"`
	DatabaseURL    string        `env:"DATABASE_URL" env-required:"true" env-description:"PostgreSQL connection string"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" env-default:"false" env-description:"apply pending migrations before serving"`
	JWTSecret      string        `env:"JWT_SECRET" env-required:"true" env-description:"HMAC secret for access tokens"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	WorkerCount    int           `env:"WORKER_COUNT" env-default:"1"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" env-default:"5m"`

	Redis   Redis
	Storage Storage
	AMQP    AMQP
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" env-required:"true"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Storage struct {
	Driver         string `env:"STORAGE_DRIVER" env-default:"local" env-description:"local or s3"`
	UploadDir      string `env:"UPLOAD_DIR" env-default:"uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" env-default:"10485760"`
	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION" env-default:"us-east-1"`
	S3Endpoint     string `env:"S3_ENDPOINT"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`
	S3PublicURL    string `env:"S3_PUBLIC_URL" env-description:"base URL stored as imageUrl prefix"`
}

// AMQP publishing is disabled when URL is empty.
type AMQP struct {
	URL   string `env:"AMQP_URL"`
	Queue string `env:"AMQP_QUEUE" env-default:"report.created"`
}

var (
	loadDotenv = func() error { return godotenv.Load() }
	readEnv    = cleanenv.ReadEnv
)

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := readEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Migrate is the subset of settings the migrate command needs.
type Migrate struct {
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadMigrate is Load for the migrate command, which has no use for
// Redis, storage or token settings.
func LoadMigrate() (*Migrate, error) {
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg Migrate
	if err := readEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return &cfg, nil
}

// Validate rejects settings cleanenv accepts but the service cannot run with,
// such as required variables that are set to an empty string.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.DatabaseURL) == "":
		return errors.New("DATABASE_URL is not set")
	case strings.TrimSpace(c.JWTSecret) == "":
		return errors.New("JWT_SECRET is not set")
	case strings.TrimSpace(c.Redis.Addr) == "":
		return errors.New("REDIS_ADDR is not set")
	case c.WorkerCount <= 0:
		return fmt.Errorf("invalid WORKER_COUNT: %d", c.WorkerCount)
	case c.Storage.MaxUploadBytes <= 0:
		return fmt.Errorf("invalid MAX_UPLOAD_BYTES: %d", c.Storage.MaxUploadBytes)
	}

	switch c.Storage.Driver {
	case StorageLocal:
		if c.Storage.UploadDir == "" {
			return errors.New("UPLOAD_DIR is not set")
		}
	case StorageS3:
		if c.Storage.S3Bucket == "" {
			return errors.New("S3_BUCKET is required for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

// Usage lists the supported variables, for -h output.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}
