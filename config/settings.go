package config

import (
	"fmt"
	"github.com/spf13/viper"
)

const envPrefix = "BIKESHARE"

// Settings runtime values that can change between runs without rebuilding the binary.
// Every field can be set with a BIKESHARE_ environment variable, e.g. BIKESHARE_DATA_DIR
type Settings struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Color    bool   `mapstructure:"color"`
}

// LoadSettings reads the settings from the environment. defaultLogFile is used when BIKESHARE_LOG_FILE is not set
func LoadSettings(defaultLogFile string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("data_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("color", true)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("error reading settings from environment: %w", err)
	}

	return settings, nil
}
