// Package conf loads tool configuration from config files and
// environment variables.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds the full configuration tree.
type Settings struct {
	Debug bool `mapstructure:"debug"`

	Annotation struct {
		// Delimiter overrides delimiter sniffing, empty for automatic.
		Delimiter string `mapstructure:"delimiter"`
		// Decimal is the decimal separator convention, point or comma.
		Decimal string `mapstructure:"decimal"`
		// TimeResolution is the event roll frame length in seconds.
		TimeResolution float64 `mapstructure:"timeresolution"`
		// AudioDir is the base directory for resolving audio files.
		AudioDir string `mapstructure:"audiodir"`
	} `mapstructure:"annotation"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Log struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSizeMB  int    `mapstructure:"maxsize"`
		MaxBackups int    `mapstructure:"maxbackups"`
	} `mapstructure:"log"`
}

// Load reads the configuration from disk and environment.
func Load() (*Settings, error) {
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing configuration: %w", err)
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling configuration: %w", err)
	}
	return settings, nil
}

func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("dcase")
	viper.AutomaticEnv()

	configPaths, err := configPaths()
	if err != nil {
		return err
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config file is fine, defaults apply.
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func configPaths() ([]string, error) {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "dcase-go"))
	}
	return paths, nil
}

func setDefaultConfig() {
	viper.SetDefault("debug", false)
	viper.SetDefault("annotation.delimiter", "")
	viper.SetDefault("annotation.decimal", "point")
	viper.SetDefault("annotation.timeresolution", 0.01)
	viper.SetDefault("annotation.audiodir", "")
	viper.SetDefault("database.path", "annotations.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.maxsize", 10)
	viper.SetDefault("log.maxbackups", 3)
}
