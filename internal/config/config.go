package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/shindan/internal/store"
)

// Config holds application configuration loaded from flags, environment
// variables and an optional config file.
type Config struct {
	DBPath        string `mapstructure:"db"`              // SQLite file; empty means the XDG default
	DetailBaseURL string `mapstructure:"detail_base_url"` // prefix for result detail links
	HistoryLimit  int    `mapstructure:"history_limit"`   // runs shown by default
	Server        Server `mapstructure:"server"`
}

// Server configures the HTTP API.
type Server struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// Load reads configuration. Precedence, highest first: flags, SHINDAN_*
// environment variables (including those from a .env file), config.yaml,
// defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./config")

	v.SetDefault("db", "")
	v.SetDefault("detail_base_url", "")
	v.SetDefault("history_limit", 20)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.session_ttl", "30m")

	v.SetEnvPrefix("SHINDAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("db"); f != nil {
			if err := v.BindPFlag("db", f); err != nil {
				return nil, fmt.Errorf("bind db flag: %w", err)
			}
		}
		if f := flags.Lookup("addr"); f != nil {
			if err := v.BindPFlag("server.addr", f); err != nil {
				return nil, fmt.Errorf("bind addr flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	return &cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/shindan or ~/.config/shindan.
func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "shindan")
}

// ResolveDBPath returns the configured database path, falling back to the
// XDG default, and makes sure its directory exists.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// DetailURL joins a result's detail path onto DetailBaseURL.
func (c *Config) DetailURL(path string) string {
	if c.DetailBaseURL == "" || path == "" {
		return path
	}
	u, err := url.JoinPath(c.DetailBaseURL, path)
	if err != nil {
		return path
	}
	return u
}
