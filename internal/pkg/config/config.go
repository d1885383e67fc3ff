package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"

	MailTLSSSL      = "ssl"
	MailTLSStartTLS = "starttls"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Upload    UploadConfig
	Admin     AdminConfig
	Mail      MailConfig
	Redis     RedisConfig
	Reconcile ReconcileConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"SERVER_PORT" default:"3000" validate:"required,numeric"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfig struct {
	Path string `envconfig:"DB_PATH" default:"creovibe.db" validate:"required"`
}

type UploadConfig struct {
	Driver            string   `envconfig:"STORAGE_DRIVER" default:"local" validate:"oneof=local s3"`
	UploadsDir        string   `envconfig:"UPLOAD_DIR" default:"static/uploads" validate:"required"`
	MaxFileSize       int64    `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"52428800" validate:"gt=0"` // 50MB
	AllowedExtensions []string `envconfig:"UPLOAD_ALLOWED_EXTENSIONS" default:"png,jpg,jpeg,gif,mp4,webm,ogg,mov" validate:"min=1,dive,required"`
	S3Bucket          string   `envconfig:"S3_BUCKET" validate:"required_if=Driver s3"`
	S3Region          string   `envconfig:"S3_REGION" default:"eu-central-1"`
	S3PublicURL       string   `envconfig:"S3_PUBLIC_URL" validate:"omitempty,url"`
}

type AdminConfig struct {
	Username      string        `envconfig:"ADMIN_USERNAME" default:"admin" validate:"required"`
	PasswordHash  string        `envconfig:"ADMIN_PASSWORD_HASH" validate:"required"`
	SessionSecret string        `envconfig:"SESSION_SECRET" validate:"required,min=32"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h" validate:"gt=0"`
	Issuer        string        `envconfig:"SESSION_ISSUER" default:"creovibe"`
	CookieSecure  bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

type MailConfig struct {
	Host     string        `envconfig:"MAIL_HOST" default:"smtp.gmail.com"`
	Port     int           `envconfig:"MAIL_PORT" default:"465" validate:"gt=0,lte=65535"`
	Username string        `envconfig:"MAIL_USERNAME"`
	Password string        `envconfig:"MAIL_PASSWORD"`
	From     string        `envconfig:"MAIL_FROM" validate:"omitempty,email"`
	To       string        `envconfig:"MAIL_TO" validate:"omitempty,email"`
	TLSMode  string        `envconfig:"MAIL_TLS_MODE" default:"ssl" validate:"oneof=ssl starttls"`
	Timeout  time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s" validate:"gt=0"`
}

// Enabled reports whether enough is configured to attempt a relay.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Username != "" && m.From != "" && m.To != ""
}

// RedisConfig is optional; an empty Addr keeps flash sessions in memory.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type ReconcileConfig struct {
	Schedule string        `envconfig:"RECONCILE_CRON" default:"@every 30m"`
	Grace    time.Duration `envconfig:"RECONCILE_GRACE" default:"10m"`
}

// Load reads the optional env files, then the process environment, and validates the result.
// Variables already present in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Upload.AllowedExtensions = normalizeExtensions(cfg.Upload.AllowedExtensions)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// EnsureDirs creates the upload directory and the database parent directory.
func (c *Config) EnsureDirs() error {
	if c.Upload.Driver == StorageDriverLocal {
		if err := os.MkdirAll(c.Upload.UploadsDir, 0o755); err != nil {
			return fmt.Errorf("creating upload dir: %w", err)
		}
	}
	if dir := filepath.Dir(c.Database.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database dir: %w", err)
		}
	}
	return nil
}

func normalizeExtensions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ext := range in {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
