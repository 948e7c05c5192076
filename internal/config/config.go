// Package config provides configuration management for robson and robson-go.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Execution modes for handing control to the delegate binary.
const (
	ExecModeReplace = "replace"
	ExecModeSpawn   = "spawn"
)

// Default configuration values.
const (
	DefaultDelegate   = "robson-go"
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultRedisAddr  = "localhost:6379"
	DefaultPort       = "8080"
	DefaultChannel    = "market_prices"
	DefaultPython     = "python"
	EnvPrefix         = "ROBSON"
	ConfigFileEnv     = "ROBSON_CONFIG"
)

// Setting keys. Flags bound through Load must use the same names.
const (
	KeyDelegate   = "delegate"
	KeyExecMode   = "exec-mode"
	KeyVerbose    = "verbose"
	KeyAPIBaseURL = "api-base-url"
	KeyToken      = "token"
	KeyRedis      = "redis"
	KeyPort       = "port"
	KeyChannel    = "channel"
	KeyPython     = "python"
	KeyManagePy   = "manage-py"
	KeyNoColor    = "no-color"
)

// Settings is the merged configuration of defaults, config file,
// ROBSON_* environment variables and command line flags.
type Settings struct {
	Delegate   string `mapstructure:"delegate"`
	ExecMode   string `mapstructure:"exec-mode"`
	Verbose    bool   `mapstructure:"verbose"`
	APIBaseURL string `mapstructure:"api-base-url"`
	Token      string `mapstructure:"token"`
	RedisAddr  string `mapstructure:"redis"`
	Port       string `mapstructure:"port"`
	Channel    string `mapstructure:"channel"`
	Python     string `mapstructure:"python"`
	ManagePy   string `mapstructure:"manage-py"`
	NoColor    bool   `mapstructure:"no-color"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-"`
}

// DefaultExecMode returns the execution mode used when none is configured.
// Process image replacement is only available on Unix.
func DefaultExecMode() string {
	if runtime.GOOS == "windows" {
		return ExecModeSpawn
	}
	return ExecModeReplace
}

// Load reads the configuration. configFile overrides the search path (and
// ROBSON_CONFIG); flags, when non-nil, are bound by key name so that an
// explicitly set flag wins over everything else.
func Load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault(KeyDelegate, DefaultDelegate)
	v.SetDefault(KeyExecMode, DefaultExecMode())
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyRedis, DefaultRedisAddr)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyChannel, DefaultChannel)
	v.SetDefault(KeyPython, DefaultPython)
	v.SetDefault(KeyManagePy, "")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// ROBSON_TOKEN is picked up by AutomaticEnv first.
	if err := v.BindEnv(KeyToken, "ROBSON_API_TOKEN", "ROBSON_JWT"); err != nil {
		return nil, fmt.Errorf("binding token environment: %w", err)
	}

	if flags != nil {
		for _, key := range v.AllKeys() {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", key, err)
				}
			}
		}
	}

	if configFile == "" {
		configFile = os.Getenv(ConfigFileEnv)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "robson"))
		}
		v.AddConfigPath("/etc/robson")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	settings.ConfigFile = v.ConfigFileUsed()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate reports settings that can never work.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Delegate) == "" {
		return errors.New("delegate binary name must not be empty")
	}
	switch s.ExecMode {
	case ExecModeReplace, ExecModeSpawn:
	default:
		return fmt.Errorf("unknown exec-mode %q (want %q or %q)", s.ExecMode, ExecModeReplace, ExecModeSpawn)
	}
	return nil
}
