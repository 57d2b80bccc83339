package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Toast  ToastConfig
	Submit SubmitConfig
	Log    LogConfig
	Keys   KeysConfig
}

// ToastConfig holds notification settings.
type ToastConfig struct {
	Duration time.Duration
}

// SubmitConfig holds settings of the simulated submitter.
type SubmitConfig struct {
	Delay time.Duration
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

// KeysConfig points at the keybinding override file.
type KeysConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix ECOCICLO_.
// An explicit path (argument or ECOCICLO_CONFIG) must exist; the default location may not.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("toast.duration", "3s")
	v.SetDefault("submit.delay", "1s")
	v.SetDefault("log.path", filepath.Join(stateDir(), "ecociclo", "ecociclo.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("keys.path", filepath.Join(configDir(), "keybindings.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ECOCICLO_CONFIG")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ECOCICLO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Toast.Duration <= 0 {
		return Config{}, fmt.Errorf("toast.duration must be positive, got %s", c.Toast.Duration)
	}
	if c.Submit.Delay < 0 {
		return Config{}, fmt.Errorf("submit.delay must not be negative, got %s", c.Submit.Delay)
	}
	return c, nil
}

// configDir returns the directory for ecociclo config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ecociclo")
	}
	return filepath.Join(dir, "ecociclo")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return os.TempDir()
}
