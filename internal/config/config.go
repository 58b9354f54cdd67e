package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/ivanglie/coinboard/internal/coinmarketcap"
)

// Keys read from the environment or the config file
const (
	KeyConfigFile      = "CONFIG_FILE"
	KeyPort            = "PORT"
	KeyAPIKey          = "COINMARKETCAP_API_KEY"
	KeyBaseURL         = "COINMARKETCAP_BASE_URL"
	KeyLimit           = "COINMARKETCAP_LIMIT"
	KeyRequestTimeout  = "REQUEST_TIMEOUT"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
)

const defaultEnvFile = ".env"

// Config holds process-wide settings of both entry points
type Config struct {
	Port            int
	APIKey          string
	BaseURL         string
	Limit           int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "3000")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyBaseURL, coinmarketcap.DefaultBaseURL)
	v.SetDefault(KeyLimit, "0")
	v.SetDefault(KeyRequestTimeout, "10s")
	v.SetDefault(KeyShutdownTimeout, "5s")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
}

// Load reads configuration from the environment. Values may also come from
// the file named by CONFIG_FILE or, when unset, from a .env file in the
// working directory. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	path := os.Getenv(KeyConfigFile)
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err == nil {
			path = defaultEnvFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if ext := filepath.Ext(path); ext == "" || ext == defaultEnvFile {
			v.SetConfigType("env")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return parse(v)
}

func parse(v *viper.Viper) (*Config, error) {
	port, err := strconv.Atoi(v.GetString(KeyPort))
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid %s %q", KeyPort, v.GetString(KeyPort))
	}

	limit, err := strconv.Atoi(v.GetString(KeyLimit))
	if err != nil || limit < 0 {
		return nil, fmt.Errorf("invalid %s %q", KeyLimit, v.GetString(KeyLimit))
	}

	requestTimeout, err := duration(v, KeyRequestTimeout)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := duration(v, KeyShutdownTimeout)
	if err != nil {
		return nil, err
	}

	baseURL := v.GetString(KeyBaseURL)
	if baseURL == "" {
		return nil, errors.New(KeyBaseURL + " is empty")
	}

	return &Config{
		Port:            port,
		APIKey:          v.GetString(KeyAPIKey),
		BaseURL:         baseURL,
		Limit:           limit,
		RequestTimeout:  requestTimeout,
		ShutdownTimeout: shutdownTimeout,
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
	}, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration %s", key, d)
	}
	return d, nil
}
