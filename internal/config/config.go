package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Makeblastdb string `mapstructure:"makeblastdb"`
	DBType      string `mapstructure:"dbtype"`
}

var DefaultConfig = Config{
	Makeblastdb: "makeblastdb",
	DBType:      "prot",
}

func LoadConfig(cfgFile string, cliName string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to find home directory: %w", err)
		}

		configDir := filepath.Join(homeDir, ".config", cliName)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		viper.AddConfigPath(configDir)
		viper.AddConfigPath(homeDir)
		viper.SetConfigName(fmt.Sprintf(".%s", cliName))
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("makeblastdb", DefaultConfig.Makeblastdb)
	viper.SetDefault("dbtype", DefaultConfig.DBType)

	viper.AutomaticEnv()
	viper.SetEnvPrefix(cliName)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func SaveConfig(config *Config) error {
	viper.Set("makeblastdb", config.Makeblastdb)
	viper.Set("dbtype", config.DBType)

	return viper.WriteConfig()
}

func GetConfigPath() string {
	return viper.ConfigFileUsed()
}
