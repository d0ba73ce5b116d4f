package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, matching config/config.yaml.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	TourAPI TourAPIConfig `mapstructure:"tourapi"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug/release/test
}

// TourAPIConfig holds everything needed to talk to the tourism data provider.
type TourAPIConfig struct {
	BaseURL           string `mapstructure:"base_url"`
	ServiceKey        string `mapstructure:"service_key"`
	MobileOS          string `mapstructure:"mobile_os"`
	MobileApp         string `mapstructure:"mobile_app"`
	Timeout           int    `mapstructure:"timeout"`            // seconds
	RateLimit         int    `mapstructure:"rate_limit"`         // upstream requests per second
	EnrichConcurrency int    `mapstructure:"enrich_concurrency"` // parallel detail lookups
	Proxy             string `mapstructure:"proxy"`
}

// LoadConfig reads config/config.yaml. Secrets come from .env or the
// environment and take precedence over the yaml values.
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// overrideFromEnv applies environment overrides for secrets and
// deployment-provided values (env > yaml).
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("TOUR_API_KEY"); v != "" {
		cfg.TourAPI.ServiceKey = v
	}
	if v := os.Getenv("TOUR_API_BASE_URL"); v != "" {
		cfg.TourAPI.BaseURL = v
	}
	if v := os.Getenv("TOUR_API_PROXY"); v != "" {
		cfg.TourAPI.Proxy = v
	}
	// Hosting platforms inject the listen port this way.
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.TourAPI.Timeout <= 0 {
		cfg.TourAPI.Timeout = 20
	}
	if cfg.TourAPI.RateLimit <= 0 {
		cfg.TourAPI.RateLimit = 10
	}
	if cfg.TourAPI.EnrichConcurrency <= 0 {
		cfg.TourAPI.EnrichConcurrency = 5
	}
	if cfg.TourAPI.MobileOS == "" {
		cfg.TourAPI.MobileOS = "AND"
	}
	if cfg.TourAPI.MobileApp == "" {
		cfg.TourAPI.MobileApp = "MyApp"
	}
}
