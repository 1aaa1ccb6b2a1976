// Package config loads guidgen command settings from a config file, GUIDGEN_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GUIDGEN_SCHEME.
const EnvPrefix = "GUIDGEN"

// State backends.
const (
	BackendNone   = "none"
	BackendPebble = "pebble"
	BackendMySQL  = "mysql"
)

// Config holds the resolved settings of one guidgen invocation.
type Config struct {
	Scheme    string `mapstructure:"scheme"`
	Count     int    `mapstructure:"count"`
	Namespace string `mapstructure:"namespace"`
	Name      string `mapstructure:"name"`
	Domain    string `mapstructure:"domain"`
	// LocalID is negative when unset.
	LocalID  int64  `mapstructure:"local-id"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`

	StateBackend string `mapstructure:"state-backend"`
	StateDir     string `mapstructure:"state-dir"`
	StateDSN     string `mapstructure:"state-dsn"`
	StateName    string `mapstructure:"state-name"`
}

// Defaults mirrors the zero-configuration behavior of the command.
var Defaults = Config{
	Scheme:       "v7",
	Count:        1,
	Namespace:    "dns",
	Domain:       "person",
	LocalID:      -1,
	Format:       "text",
	LogLevel:     "warn",
	StateBackend: BackendNone,
}

// NewViper returns a viper instance with defaults and environment binding.
// When pathFile is not empty the file is read as well; its type is inferred
// from the extension.
func NewViper(pathFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("scheme", Defaults.Scheme)
	v.SetDefault("count", Defaults.Count)
	v.SetDefault("namespace", Defaults.Namespace)
	v.SetDefault("name", Defaults.Name)
	v.SetDefault("domain", Defaults.Domain)
	v.SetDefault("local-id", Defaults.LocalID)
	v.SetDefault("format", Defaults.Format)
	v.SetDefault("log-level", Defaults.LogLevel)
	v.SetDefault("state-backend", Defaults.StateBackend)
	v.SetDefault("state-dir", Defaults.StateDir)
	v.SetDefault("state-dsn", Defaults.StateDSN)
	v.SetDefault("state-name", Defaults.StateName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if pathFile == "" {
		return v, nil
	}

	filename := path.Base(pathFile)
	configName := filename[:len(filename)-len(path.Ext(filename))]
	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", pathFile, err)
	}
	return v, nil
}

// Decode resolves v into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	c.Scheme = strings.ToLower(c.Scheme)
	c.Format = strings.ToLower(c.Format)
	c.StateBackend = strings.ToLower(c.StateBackend)
	return c, c.Validate()
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("config: count must be positive, got %d", c.Count)
	}
	if c.LocalID > 0xffffffff {
		return fmt.Errorf("config: local-id %d does not fit in 32 bits", c.LocalID)
	}
	switch c.StateBackend {
	case BackendNone, "":
	case BackendPebble:
		if c.StateDir == "" {
			return errors.New("config: state-dir is required for the pebble backend")
		}
	case BackendMySQL:
		if c.StateDSN == "" {
			return errors.New("config: state-dsn is required for the mysql backend")
		}
	default:
		return fmt.Errorf("config: unknown state-backend %q", c.StateBackend)
	}
	return nil
}
