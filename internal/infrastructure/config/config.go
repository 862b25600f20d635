package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "quartermaster/internal/shared/config"
)

type Config struct {
	Server         sharedConfig.ServerConfig         `mapstructure:"server"`
	Database       sharedConfig.DatabaseConfig       `mapstructure:"database"`
	Logger         sharedConfig.LoggerConfig         `mapstructure:"logger"`
	Redis          sharedConfig.RedisConfig          `mapstructure:"redis"`
	Provider       sharedConfig.ProviderConfig       `mapstructure:"provider"`
	Alerts         sharedConfig.AlertsConfig         `mapstructure:"alerts"`
	Classification sharedConfig.ClassificationConfig `mapstructure:"classification"`
	Cache          sharedConfig.CacheConfig          `mapstructure:"cache"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("QM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "quartermaster_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Provider defaults (token must be configured)
	viper.SetDefault("provider.base_url", "https://prod-back.goworkwize.com/api/public")
	viper.SetDefault("provider.token", "")
	viper.SetDefault("provider.timeout_seconds", 30)
	viper.SetDefault("provider.page_delay_ms", 100)

	// Alerts defaults (disabled until SMTP is configured)
	viper.SetDefault("alerts.enabled", false)
	viper.SetDefault("alerts.smtp_host", "localhost")
	viper.SetDefault("alerts.smtp_port", 1025)
	viper.SetDefault("alerts.smtp_user", "")
	viper.SetDefault("alerts.smtp_password", "")
	viper.SetDefault("alerts.from_address", "noreply@quartermaster.local")
	viper.SetDefault("alerts.to_addresses", []string{})

	// Classification defaults (zero means use the built-in rule values)
	viper.SetDefault("classification.premium_memory_gb", 0)
	viper.SetDefault("classification.mac_premium_memory_gb", 0)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl_seconds", 60)
}
