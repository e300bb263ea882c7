package config

import (
	"github.com/spf13/viper"
)

// DefaultReportFilename 默认的报告文件名
const DefaultReportFilename = "file_organization_report.txt"

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Report struct {
		Filename string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.file-organizer")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/file-organizer")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("report.filename", DefaultReportFilename)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
