package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2323
	defaultEnv        = "development"

	defaultAuthTimeoutSeconds = 5
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment-variable overrides applied on top.
type AppConfig struct {
	Port           int
	DSN            string
	RedisURL       string
	Env            string // "development" | "production"
	JWTSecret      string
	AllowedOrigins []string

	// AdminUser is the single GitHub username allowed through the admin gate.
	AdminUser string
	// AuthTimeoutSeconds bounds how long the gate waits for an identity
	// assertion before failing safe to signed-out.
	AuthTimeoutSeconds int

	GitHubClientID     string
	GitHubClientSecret string
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// rawAppConfig accepts the YAML document, including legacy alias keys.
type rawAppConfig struct {
	Port     int               `yaml:"port"`
	DSN      string            `yaml:"dsn"`
	Database rawDatabaseConfig `yaml:"database"`
	RedisURL string            `yaml:"redis_url"`
	Redis    rawRedisConfig    `yaml:"redis"`
	Env      string            `yaml:"env"`

	JWTSecret          string   `yaml:"jwt_secret"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	AdminUser          string   `yaml:"admin_user"`
	AdminUsername      string   `yaml:"admin_username"` // alias
	AuthTimeoutSeconds int      `yaml:"auth_timeout_seconds"`

	GitHub rawGitHubConfig `yaml:"github"`
}

type rawDatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Username string `yaml:"username"` // alias
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

type rawRedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rawGitHubConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// Load reads the YAML config at path, normalizes it, and applies environment
// overrides. A missing file is not an error: everything can come from env.
func Load(path string) (*AppConfig, error) {
	var raw rawAppConfig
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := normalize(&raw)
	applyEnvOverrides(cfg)

	if cfg.AdminUser == "" {
		return nil, fmt.Errorf("admin_user is required (or set PORTFOLIO_ADMIN_USER)")
	}
	return cfg, nil
}

func normalize(raw *rawAppConfig) *AppConfig {
	cfg := &AppConfig{
		Port:               raw.Port,
		DSN:                firstNonEmpty(raw.DSN, raw.Database.DSN),
		RedisURL:           firstNonEmpty(raw.RedisURL, raw.Redis.URL),
		Env:                firstNonEmpty(raw.Env, defaultEnv),
		JWTSecret:          raw.JWTSecret,
		AllowedOrigins:     trimAll(raw.AllowedOrigins),
		AdminUser:          firstNonEmpty(raw.AdminUser, raw.AdminUsername),
		AuthTimeoutSeconds: raw.AuthTimeoutSeconds,
		GitHubClientID:     raw.GitHub.ClientID,
		GitHubClientSecret: raw.GitHub.ClientSecret,
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DSN == "" {
		cfg.DSN = raw.Database.dsnValue()
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = raw.Redis.urlValue()
	}
	if cfg.AuthTimeoutSeconds <= 0 {
		cfg.AuthTimeoutSeconds = defaultAuthTimeoutSeconds
	}
	return cfg
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_DSN")); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_ENV")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_JWT_SECRET")); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_ADMIN_USER")); v != "" {
		cfg.AdminUser = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_GITHUB_CLIENT_ID")); v != "" {
		cfg.GitHubClientID = v
	}
	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_GITHUB_CLIENT_SECRET")); v != "" {
		cfg.GitHubClientSecret = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
