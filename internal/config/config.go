// Package config loads process configuration from the environment and the
// site file.
//
// Environment variables carry deployment settings (port, database, secrets).
// A .env file in the working directory is read first if present; variables
// already set in the environment win. The site file (SITE_CONFIG, YAML or
// TOML) carries content choices such as whether the projects gallery is
// mounted.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Port      int
	LogLevel  slog.Level
	AssetsDir string

	// Analytics
	AnalyticsEnabled bool
	DBPath           string
	AnalyticsSalt    string
	Retention        time.Duration

	// Admin
	JWTSecret          string
	AdminPasswordHash  string
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string
	AdminGitHubLogins  []string
	// CookieSecure marks admin cookies Secure. On unless COOKIE_SECURE=false,
	// which plain-HTTP deployments other than localhost need.
	CookieSecure bool

	SiteFile string
	Site     Site
}

// AdminEnabled reports whether the admin routes should be registered. They
// need a signing secret and something to show.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AnalyticsEnabled
}

// GitHubEnabled reports whether GitHub login is configured.
func (c *Config) GitHubEnabled() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != ""
}

// Defaults
const (
	DefaultPort          = 8080
	DefaultAssetsDir     = "public"
	DefaultDBPath        = "data/portfolio.db"
	DefaultRetentionDays = 90
)

// Load reads envFiles (".env" when none are given) into the environment and
// builds the configuration. Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AssetsDir:          envString("ASSETS_DIR", DefaultAssetsDir),
		DBPath:             envString("DB_PATH", DefaultDBPath),
		AnalyticsSalt:      os.Getenv("ANALYTICS_SALT"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminPasswordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		GitHubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		GitHubCallbackURL:  os.Getenv("GITHUB_CALLBACK_URL"),
		AdminGitHubLogins:  envList("ADMIN_GITHUB_LOGINS"),
		SiteFile:           os.Getenv("SITE_CONFIG"),
		Site:               DefaultSite(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config: PORT %d out of range", cfg.Port)
	}

	if cfg.LogLevel, err = envLevel("LOG_LEVEL", slog.LevelInfo); err != nil {
		return nil, err
	}

	if cfg.AnalyticsEnabled, err = envBool("ANALYTICS_ENABLED", false); err != nil {
		return nil, err
	}

	days, err := envInt("VISIT_RETENTION_DAYS", DefaultRetentionDays)
	if err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, fmt.Errorf("config: VISIT_RETENTION_DAYS must not be negative")
	}
	cfg.Retention = time.Duration(days) * 24 * time.Hour

	if cfg.CookieSecure, err = envBool("COOKIE_SECURE", true); err != nil {
		return nil, err
	}

	if cfg.GitHubCallbackURL == "" {
		cfg.GitHubCallbackURL = fmt.Sprintf("http://localhost:%d/admin/github/callback", cfg.Port)
	}

	if cfg.SiteFile != "" {
		site, err := LoadSite(cfg.SiteFile)
		if err != nil {
			return nil, err
		}
		cfg.Site = *site
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return b, nil
}

func envLevel(key string, def slog.Level) (slog.Level, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return def, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	return lvl, nil
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
