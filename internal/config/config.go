// Package config resolves runtime settings from, in order of precedence,
// CONTRIB_* environment variables, .env files, an optional YAML config file
// and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "CONTRIB"

const (
	KeyDB               = "db"
	KeyUser             = "user"
	KeyLogUseCases      = "log_use_cases"
	KeyLogLevel         = "log_level"
	KeyDefaultRangeDays = "default_range_days"
)

// DefaultEnvFiles are read from the working directory; later files win.
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	DBPath string
	// UserID is the volunteer whose time is logged and reported by default.
	UserID           string
	LogUseCases      bool
	LogLevel         slog.Level
	DefaultRangeDays int
	// ConfigFile is the config file actually read, if any.
	ConfigFile string
}

// Load reads configuration. configFile may be empty, in which case
// contrib.yaml is looked up in the working directory and in ~/.contrib.
func Load(configFile string, envFiles ...string) (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	v.SetDefault(KeyDB, filepath.Join(home, ".contrib", "contrib.db"))
	v.SetDefault(KeyUser, "")
	v.SetDefault(KeyLogUseCases, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDefaultRangeDays, 365)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("contrib")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".contrib"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := applyEnvFiles(v, envFiles); err != nil {
		return nil, err
	}
	return fromViper(v)
}

// applyEnvFiles layers values from .env files above the config file but
// below variables already present in the process environment.
func applyEnvFiles(v *viper.Viper, files []string) error {
	prefix := EnvPrefix + "_"
	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("reading %s: %w", f, err)
		}
		for name, value := range values {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if _, set := os.LookupEnv(name); set {
				continue
			}
			v.Set(strings.ToLower(strings.TrimPrefix(name, prefix)), value)
		}
	}
	return nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBPath:           v.GetString(KeyDB),
		UserID:           v.GetString(KeyUser),
		LogUseCases:      v.GetBool(KeyLogUseCases),
		DefaultRangeDays: v.GetInt(KeyDefaultRangeDays),
		ConfigFile:       v.ConfigFileUsed(),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	if cfg.DefaultRangeDays <= 0 {
		return nil, fmt.Errorf("invalid %s: must be positive, got %d", KeyDefaultRangeDays, cfg.DefaultRangeDays)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("invalid %s: path is empty", KeyDB)
	}
	return cfg, nil
}
