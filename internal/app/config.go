package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/videoscripter-backend/internal/data/db"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
	"github.com/yungbote/videoscripter-backend/internal/platform/envutil"
)

// Config is resolved in three layers: built-in defaults, an optional YAML file named by
// CONFIG_FILE, then environment variables (a local .env is loaded first).
type Config struct {
	LogMode     string   `yaml:"log_mode"`
	Port        string   `yaml:"port"`
	Environment string   `yaml:"environment"`
	CORSOrigins []string `yaml:"cors_origins"`

	DB db.Config `yaml:"-"`

	JWTSecretKey   string        `yaml:"-"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`

	YouTubeAPIKey   string        `yaml:"-"`
	CatalogCacheTTL time.Duration `yaml:"catalog_cache_ttl"`
	RedisAddr       string        `yaml:"redis_addr"`

	IngestConcurrency int `yaml:"ingest_concurrency"`
	SearchMaxResults  int `yaml:"search_max_results"`

	MetricsEnabled bool          `yaml:"metrics_enabled"`
	AutoMigrate    bool          `yaml:"auto_migrate"`
	Tracing        TracingConfig `yaml:"tracing"`
}

type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
	// SampleRatio below zero lets the environment decide.
	SampleRatio float64           `yaml:"sample_ratio"`
	Endpoint    string            `yaml:"endpoint"`
	Insecure    bool              `yaml:"insecure"`
	Headers     map[string]string `yaml:"-"`
}

// fileConfig mirrors the YAML layout. Secrets are never read from the file.
type fileConfig struct {
	Config   `yaml:",inline"`
	Database struct {
		Driver     string `yaml:"driver"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Name       string `yaml:"name"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

func defaultConfig() fileConfig {
	var fc fileConfig
	fc.LogMode = "development"
	fc.Port = "8080"
	fc.Environment = "local"
	fc.AccessTokenTTL = time.Hour
	fc.CatalogCacheTTL = 10 * time.Minute
	fc.IngestConcurrency = 4
	fc.SearchMaxResults = 25
	fc.AutoMigrate = true
	fc.Tracing.SampleRatio = -1
	fc.Database.Driver = db.DriverPostgres
	fc.Database.Host = "localhost"
	fc.Database.Port = "5432"
	fc.Database.User = "postgres"
	fc.Database.Name = "videoscripter"
	return fc
}

// LoadDotEnv loads .env when present. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func loadConfigFile(path string) (fileConfig, error) {
	fc := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func LoadConfig(log *logger.Logger) (Config, error) {
	fc, err := loadConfigFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		LogMode:     envutil.String("LOG_MODE", fc.LogMode, log),
		Port:        envutil.String("PORT", fc.Port, log),
		Environment: envutil.String("ENVIRONMENT", fc.Environment, log),
		CORSOrigins: fc.CORSOrigins,
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", fc.Database.Driver, log),
			PostgresHost:     envutil.String("POSTGRES_HOST", fc.Database.Host, log),
			PostgresPort:     envutil.String("POSTGRES_PORT", fc.Database.Port, log),
			PostgresUser:     envutil.String("POSTGRES_USER", fc.Database.User, log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", fc.Database.Name, log),
			SQLitePath:       envutil.String("SQLITE_PATH", fc.Database.SQLitePath, log),
		},
		JWTSecretKey:      envutil.String("JWT_SECRET_KEY", "", log),
		AccessTokenTTL:    envutil.Duration("ACCESS_TOKEN_TTL", fc.AccessTokenTTL, log),
		YouTubeAPIKey:     envutil.String("YOUTUBE_API_KEY", "", log),
		CatalogCacheTTL:   envutil.Duration("CATALOG_CACHE_TTL", fc.CatalogCacheTTL, log),
		RedisAddr:         envutil.String("REDIS_ADDR", fc.RedisAddr, log),
		IngestConcurrency: envutil.Int("INGEST_CONCURRENCY", fc.IngestConcurrency, log),
		SearchMaxResults:  envutil.Int("SEARCH_MAX_RESULTS", fc.SearchMaxResults, log),
		MetricsEnabled:    envutil.Bool("METRICS_ENABLED", fc.MetricsEnabled),
		AutoMigrate:       envutil.Bool("AUTO_MIGRATE", fc.AutoMigrate),
		Tracing: TracingConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", fc.Tracing.Enabled),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", fc.Tracing.SampleRatio, log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", fc.Tracing.Endpoint, log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", fc.Tracing.Insecure),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
		},
	}
	if extra := envutil.String("CORS_ORIGINS", "", log); extra != "" {
		cfg.CORSOrigins = append(cfg.CORSOrigins, splitCSV(extra)...)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func splitCSV(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
