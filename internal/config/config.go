package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "books"

// Config holds everything cmd/api needs to start the service or run an export.
type Config struct {
	Addr            string
	DatabaseURL     string
	DBMaxOpen       int
	DBMaxIdle       int
	RedisURL        string
	RatePerSecond   float64
	RateBurst       int
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	CorsOrigins     []string
	TLSCert         string
	TLSKey          string
	S3Bucket        string
	S3Endpoint      string
	S3Region        string
	S3Prefix        string
}

// TLS reports whether both halves of the key pair were configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// RegisterFlags adds one flag per config key. Every flag can also be set
// through BOOKS_<KEY> with dashes replaced by underscores.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("addr", ":3000", "address the HTTP server listens on")
	fs.String("database-url", "", "PostgreSQL connection string (falls back to DATABASE_URL)")
	fs.Int("db-max-open", 10, "maximum open connections in the pool")
	fs.Int("db-max-idle", 10, "maximum idle connections in the pool")
	fs.String("redis-url", "", "Redis URL for rate limiting; empty disables the limiter")
	fs.Float64("rate-per-second", 5, "token bucket refill rate per client")
	fs.Int("rate-burst", 20, "token bucket capacity per client")
	fs.Int64("max-body-bytes", 1<<20, "largest accepted request body")
	fs.Duration("shutdown-timeout", 10*time.Second, "grace period for in-flight requests on shutdown")
	fs.StringSlice("cors-origins", []string{"http://localhost:5173"}, "origins allowed to call the API from a browser")
	fs.String("tls-cert", "", "TLS certificate file")
	fs.String("tls-key", "", "TLS private key file")
	fs.String("s3-bucket", "", "bucket receiving catalog exports")
	fs.String("s3-endpoint", "", "custom S3 endpoint (MinIO, R2, ...)")
	fs.String("s3-region", "us-east-1", "S3 region")
	fs.String("s3-prefix", "exports/", "object key prefix for catalog exports")
}

// LoadEnv reads .env files into the process environment and points v at
// BOOKS_* variables. Missing files are ignored.
func LoadEnv(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database-url", "BOOKS_DATABASE_URL", "DATABASE_URL")
}

// Load binds fs to v and reads the resulting Config.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:            v.GetString("addr"),
		DatabaseURL:     v.GetString("database-url"),
		DBMaxOpen:       v.GetInt("db-max-open"),
		DBMaxIdle:       v.GetInt("db-max-idle"),
		RedisURL:        v.GetString("redis-url"),
		RatePerSecond:   v.GetFloat64("rate-per-second"),
		RateBurst:       v.GetInt("rate-burst"),
		MaxBodyBytes:    v.GetInt64("max-body-bytes"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		CorsOrigins:     splitList(v.GetStringSlice("cors-origins")),
		TLSCert:         v.GetString("tls-cert"),
		TLSKey:          v.GetString("tls-key"),
		S3Bucket:        v.GetString("s3-bucket"),
		S3Endpoint:      v.GetString("s3-endpoint"),
		S3Region:        v.GetString("s3-region"),
		S3Prefix:        v.GetString("s3-prefix"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database-url is required (set BOOKS_DATABASE_URL or DATABASE_URL)")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max-body-bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.RedisURL != "" && (c.RatePerSecond <= 0 || c.RateBurst < 1) {
		return fmt.Errorf("rate limiting needs rate-per-second > 0 and rate-burst >= 1")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("tls-cert and tls-key must be set together")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown-timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Warnings lists non-fatal settings worth logging on startup.
func (c Config) Warnings() []string {
	var warns []string
	if !c.TLS() {
		warns = append(warns, "tls-cert/tls-key not set; serving plain HTTP")
	}
	if strings.HasPrefix(c.RedisURL, "redis://") {
		warns = append(warns, "redis-url uses redis:// (no TLS). Prefer rediss:// outside local development")
	}
	if c.RedisURL == "" {
		warns = append(warns, "redis-url not set; rate limiting disabled")
	}
	for _, o := range c.CorsOrigins {
		if o == "*" {
			warns = append(warns, `cors-origins contains "*" which is matched literally, not as a wildcard`)
		}
	}
	return warns
}

// env vars arrive as one comma separated string
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
