package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL        = "http://localhost:8081/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogLevel       = "info"
	DefaultPageSize       = 10
	MaxPageSize           = 100
)

type Config struct {
	BaseURL        string        `toml:"base_url"`
	Token          string        `toml:"token"`
	RequestTimeout time.Duration `toml:"-"`
	TimeoutSeconds int           `toml:"timeout_seconds"`
	LogFile        string        `toml:"log_file"`
	LogLevel       string        `toml:"log_level"`
	PageSize       int           `toml:"page_size"`
}

func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		LogFile:        filepath.Join(os.TempDir(), "jobportal-tui", "jobportal-tui.log"),
		LogLevel:       DefaultLogLevel,
		PageSize:       DefaultPageSize,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/jobportal-tui/config.toml (or the OS
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "jobportal-tui", "config.toml")
}

// Load applies defaults, then the TOML file at path (a missing file is not
// an error), then .env, then JOBPORTAL_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}
	// .env is optional
	_ = godotenv.Load()
	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if file.BaseURL != "" {
		c.BaseURL = file.BaseURL
	}
	if file.Token != "" {
		c.Token = file.Token
	}
	if file.TimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(file.TimeoutSeconds) * time.Second
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.PageSize > 0 {
		c.PageSize = file.PageSize
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv("JOBPORTAL_API_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("JOBPORTAL_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("JOBPORTAL_TIMEOUT"); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("JOBPORTAL_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}
	if v := os.Getenv("JOBPORTAL_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("JOBPORTAL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("JOBPORTAL_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JOBPORTAL_PAGE_SIZE: %w", err)
		}
		c.PageSize = n
	}
	return nil
}

// parseTimeout accepts a Go duration ("10s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Host returns the backend host shown in the header.
func (c Config) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL
	}
	return u.Host
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("base URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Token == "" {
		return fmt.Errorf("an API token is required (set JOBPORTAL_TOKEN or use -token)")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", MaxPageSize, c.PageSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
