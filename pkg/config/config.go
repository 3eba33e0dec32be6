package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ConfigLog struct {
	Level           string        `mapstructure:"level"`
	Format          string        `mapstructure:"format"`
	Color           bool          `mapstructure:"color"`
	PrefixColor     string        `mapstructure:"prefix_color"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	Debug           bool          `mapstructure:"debug"`
	UserAgent       string        `mapstructure:"user_agent"`
	Styling         string        `mapstructure:"styling"`
}

type ConfigStore struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type ConfigMetrics struct {
	Addr string `mapstructure:"addr"`
}

type Config struct {
	Log     ConfigLog     `mapstructure:"log"`
	Store   ConfigStore   `mapstructure:"store"`
	Metrics ConfigMetrics `mapstructure:"metrics"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Load reads config from path, or from ./configs/config.yaml or ./config.yaml
// when path is empty, then applies PREFIXLOG_* env vars on top.
func Load(path string) (*Config, error) {
	v := viper.New()
	c := &Config{}

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.color", true)
	v.SetDefault("log.prefix_color", "")
	v.SetDefault("log.refresh_interval", "0s")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.user_agent", "")
	v.SetDefault("log.styling", "auto")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.path", "")
	v.SetDefault("metrics.addr", "")

	// allow ENV variables like:
	//   PREFIXLOG_LOG_LEVEL=debug
	//   PREFIXLOG_STORE_BACKEND=leveldb
	v.SetEnvPrefix("prefixlog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		// look for file: configs/config.yaml
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")

		// optional: if no config file present, continue
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.File = v.ConfigFileUsed()

	return c, nil
}
