package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = ".accessctl"
	envPrefix  = "ACCESSCTL"
)

// ErrNotConfigured is returned when no backend URL has been stored yet.
var ErrNotConfigured = errors.New("backend URL not configured, run 'accessctl configure' first")

// Settings is the typed view of the configuration file and environment.
type Settings struct {
	BaseURL            string
	Timeout            time.Duration
	RateLimit          float64
	InsecureSkipVerify bool
	LogLevel           string
	LogFormat          string
	PollInterval       time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timeout", "15s")
	v.SetDefault("rate_limit", 0)
	v.SetDefault("insecure_skip_verify", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("poll_interval", "60s")
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) error {
	return initConfig(viper.GetViper(), cfgFile)
}

func initConfig(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load returns the current settings.
func Load() Settings {
	return load(viper.GetViper())
}

func load(v *viper.Viper) Settings {
	return Settings{
		BaseURL:            strings.TrimRight(v.GetString("base_url"), "/"),
		Timeout:            v.GetDuration("timeout"),
		RateLimit:          v.GetFloat64("rate_limit"),
		InsecureSkipVerify: v.GetBool("insecure_skip_verify"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		PollInterval:       v.GetDuration("poll_interval"),
	}
}

// Validate checks the settings every backend command depends on.
func (s Settings) Validate() error {
	if s.BaseURL == "" {
		return ErrNotConfigured
	}
	return ValidateBaseURL(s.BaseURL)
}

// ValidateBaseURL accepts absolute http and https URLs.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: want http(s)://host[:port]", raw)
	}
	return nil
}

// SaveBaseURL updates the config file with the backend URL.
func SaveBaseURL(baseURL string) error {
	return saveBaseURL(viper.GetViper(), baseURL)
}

func saveBaseURL(v *viper.Viper, baseURL string) error {
	v.Set("base_url", strings.TrimRight(baseURL, "/"))

	if err := v.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v.SafeWriteConfig()
		}
		if v.ConfigFileUsed() != "" {
			return v.WriteConfigAs(v.ConfigFileUsed())
		}
		home, herr := os.UserHomeDir()
		if herr != nil {
			return err
		}
		return v.WriteConfigAs(filepath.Join(home, configName+".yaml"))
	}
	return nil
}
