package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the xrpctl configuration, read from .xrpctl.yaml and XRPCTL_* variables.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Output  OutputConfig  `mapstructure:"output"`
}

type CatalogConfig struct {
	Path    string `mapstructure:"path"`
	SiteURL string `mapstructure:"site_url"`
}

type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// LoadConfig reads configuration from file and environment variables
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".xrpctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/xrpctl")
	}

	v.SetEnvPrefix("XRPCTL")
	v.AutomaticEnv()

	v.SetDefault("catalog.path", "catalog/content.yaml")
	v.SetDefault("catalog.site_url", "https://allaboutxrp.com")
	v.SetDefault("output.colors", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Catalog.Path == "" {
		return nil, errors.New("catalog.path must not be empty")
	}
	return &cfg, nil
}
