// Package config loads service configuration from defaults, an optional
// storefront.yaml, and STOREFRONT_* environment variables, in that order of
// precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/storefront-tracker/internal/credstore"
)

const envPrefix = "STOREFRONT"

type Config struct {
	Server      ServerConfig
	Analysis    AnalysisConfig
	Credentials CredentialConfig
	Catalog     CatalogConfig
	LogLevel    string
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimit       float64
	RateBurst       int
	CORSOrigins     []string
}

type AnalysisConfig struct {
	BaseURL         string
	Username        string
	Password        string
	Timeout         time.Duration
	RateLimit       float64
	RateBurst       int
	PollInterval    time.Duration
	AlertThreshold  float64
	VerifyOnRestore bool
}

type CredentialConfig struct {
	Backend       string
	Namespace     string
	Key           string
	Path          string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type CatalogConfig struct {
	Source      string
	Path        string
	DatabaseURL string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("analysis.base_url", "http://127.0.0.1:5000")
	v.SetDefault("analysis.username", "admin")
	v.SetDefault("analysis.password", "admin123")
	v.SetDefault("analysis.timeout", 15*time.Second)
	v.SetDefault("analysis.rate_limit", 5.0)
	v.SetDefault("analysis.rate_burst", 5)
	v.SetDefault("analysis.poll_interval", 60*time.Second)
	v.SetDefault("analysis.alert_threshold", 3.0)
	v.SetDefault("analysis.verify_on_restore", false)

	v.SetDefault("credentials.backend", "file")
	v.SetDefault("credentials.namespace", "storefront")
	v.SetDefault("credentials.key", "agentToken")
	v.SetDefault("credentials.path", "credentials.json")
	v.SetDefault("credentials.sqlite_path", "storefront.db")
	v.SetDefault("credentials.redis_addr", "localhost:6379")
	v.SetDefault("credentials.redis_password", "")
	v.SetDefault("credentials.redis_db", 0)

	v.SetDefault("catalog.source", "embedded")
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.database_url", "")

	v.SetDefault("log_level", "info")
}

// Load reads configuration. The config file is STOREFRONT_CONFIG when set,
// otherwise ./storefront.yaml if present.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("storefront")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetString("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			RateLimit:       v.GetFloat64("server.rate_limit"),
			RateBurst:       v.GetInt("server.rate_burst"),
			CORSOrigins:     stringList(v.GetStringSlice("server.cors_origins")),
		},
		Analysis: AnalysisConfig{
			BaseURL:         v.GetString("analysis.base_url"),
			Username:        v.GetString("analysis.username"),
			Password:        v.GetString("analysis.password"),
			Timeout:         v.GetDuration("analysis.timeout"),
			RateLimit:       v.GetFloat64("analysis.rate_limit"),
			RateBurst:       v.GetInt("analysis.rate_burst"),
			PollInterval:    v.GetDuration("analysis.poll_interval"),
			AlertThreshold:  v.GetFloat64("analysis.alert_threshold"),
			VerifyOnRestore: v.GetBool("analysis.verify_on_restore"),
		},
		Credentials: CredentialConfig{
			Backend:       strings.ToLower(v.GetString("credentials.backend")),
			Namespace:     v.GetString("credentials.namespace"),
			Key:           v.GetString("credentials.key"),
			Path:          v.GetString("credentials.path"),
			SQLitePath:    v.GetString("credentials.sqlite_path"),
			RedisAddr:     v.GetString("credentials.redis_addr"),
			RedisPassword: v.GetString("credentials.redis_password"),
			RedisDB:       v.GetInt("credentials.redis_db"),
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(v.GetString("catalog.source")),
			Path:        v.GetString("catalog.path"),
			DatabaseURL: v.GetString("catalog.database_url"),
		},
		LogLevel: v.GetString("log_level"),
	}
}

// stringList accepts both a YAML list and a comma separated env value.
func stringList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return fmt.Errorf("server rate limit must not be negative")
	}

	u, err := url.Parse(c.Analysis.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid analysis base url: %q", c.Analysis.BaseURL)
	}
	if c.Analysis.Timeout < 0 {
		return fmt.Errorf("analysis timeout must not be negative (0 disables it)")
	}
	if c.Analysis.PollInterval < 0 {
		return fmt.Errorf("analysis poll interval must not be negative (0 disables polling)")
	}
	if c.Analysis.AlertThreshold < 0 {
		return fmt.Errorf("alert threshold must not be negative")
	}
	if c.Analysis.RateLimit < 0 || c.Analysis.RateBurst < 0 {
		return fmt.Errorf("analysis rate limit must not be negative")
	}

	switch c.Credentials.Backend {
	case "file":
		if c.Credentials.Path == "" {
			return fmt.Errorf("credentials path is required for the file backend")
		}
	case "sqlite":
		if c.Credentials.SQLitePath == "" {
			return fmt.Errorf("credentials sqlite_path is required for the sqlite backend")
		}
	case "redis":
		if c.Credentials.RedisAddr == "" {
			return fmt.Errorf("credentials redis_addr is required for the redis backend")
		}
	case "memory":
	default:
		return fmt.Errorf("invalid credentials backend: %s (must be file, sqlite, redis, or memory)", c.Credentials.Backend)
	}

	switch c.Catalog.Source {
	case "embedded":
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the file source")
		}
	case "postgres":
		if c.Catalog.DatabaseURL == "" {
			return fmt.Errorf("catalog database_url is required for the postgres source")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be embedded, file, or postgres)", c.Catalog.Source)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// StoreConfig maps the credentials section onto the credential store's
// options.
func (c CredentialConfig) StoreConfig() credstore.Config {
	return credstore.Config{
		Backend:       c.Backend,
		Namespace:     c.Namespace,
		Key:           c.Key,
		Path:          c.Path,
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}
