package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/haytac/elm-emoji-gen/internal/logging"
)

// AppConfig holds the generator configuration.
type AppConfig struct {
	Input       string         `mapstructure:"input"`       // emoji-data JSON array
	Annotations string         `mapstructure:"annotations"` // optional CLDR annotations XML
	DecodeMode  string         `mapstructure:"decode_mode"` // stream or bulk
	SortByOrder bool           `mapstructure:"sort_by_order"`
	ModuleName  string         `mapstructure:"module_name"`
	MetricsFile string         `mapstructure:"metrics_file"`
	Log         logging.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	viper.SetDefault("input", "emoji.json")
	viper.SetDefault("annotations", "")
	viper.SetDefault("decode_mode", "stream")
	viper.SetDefault("sort_by_order", false)
	viper.SetDefault("module_name", "Emojis")
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	viper.SetDefault("log.time_format", time.RFC3339)

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.elm-emoji-gen")
		viper.AddConfigPath("/etc/elm-emoji-gen/")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetEnvPrefix("EMOJI_GEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
