// Package config loads the tunable constants of spec.md §6 from a YAML
// file via spf13/viper, falling back to defaults on load failure exactly
// as the teacher's config/config.go does for its crawler config.
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds every constant spec.md §6 names plus the ambient settings
// (batch/worker sizes, store path, HTTP address) needed to run the CLI.
type Config struct {
	WC    float64 `mapstructure:"w_c"`
	WT    float64 `mapstructure:"w_t"`
	WP    float64 `mapstructure:"w_p"`
	WDate float64 `mapstructure:"w_date"`
	CDate float64 `mapstructure:"c_date"`

	BatchSize int `mapstructure:"batch_size"`
	Workers   int `mapstructure:"workers"`

	DBPath   string `mapstructure:"db_path"`
	HTTPAddr string `mapstructure:"http_addr"`
}

// Load reads filename (without extension) as a YAML config from the
// current directory, matching the teacher's LoadCrawlerConfig shape.
func Load(filename string) (*Config, error) {
	viper.SetConfigName(filename)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("zwo")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", filename, err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: cannot unmarshal %s: %w", filename, err)
	}
	return &cfg, nil
}

// Default returns the configuration spec.md §6 and §8's end-to-end
// scenarios assume: W_C=1, W_T=2 (title weighted double), and the rest of
// the defaults the teacher's cmd/main.go falls back to on load failure.
func Default() *Config {
	return &Config{
		WC:        1,
		WT:        2,
		WP:        0.5,
		WDate:     1,
		CDate:     0,
		BatchSize: 1000,
		Workers:   runtime.NumCPU(),
		DBPath:    "nyt.db",
		HTTPAddr:  ":8080",
	}
}
