package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without APP_ prefix for Docker/VM deploys
	viper.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	viper.BindEnv("database.url", "DATABASE_URL", "APP_DATABASE_URL")
	viper.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file: env vars plus defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "leaflift-analytics")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")

	viper.SetDefault("http.port", 8000)
	viper.SetDefault("http.read_timeout", 15*time.Second)
	viper.SetDefault("http.write_timeout", 30*time.Second)
	viper.SetDefault("http.idle_timeout", time.Minute)

	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	viper.SetDefault("redis.dial_timeout", 2*time.Second)
	viper.SetDefault("redis.pool_size", 10)

	// TTLs mirror the freshness each dashboard view tolerates.
	viper.SetDefault("cache.demand_ttl", 180*time.Second)
	viper.SetDefault("cache.peak_hours_ttl", 300*time.Second)
	viper.SetDefault("cache.bottlenecks_ttl", 600*time.Second)
	viper.SetDefault("cache.fleet_ttl", 600*time.Second)
	viper.SetDefault("cache.sustainability_ttl", 600*time.Second)
	viper.SetDefault("cache.cleanup_interval", time.Minute)

	viper.SetDefault("analytics.fetch_limit", 10000)
	viper.SetDefault("analytics.min_live_records", 50)
	viper.SetDefault("analytics.default_horizon", 24)
	viper.SetDefault("analytics.forest_size", 50)
	viper.SetDefault("analytics.forest_depth", 8)
	viper.SetDefault("analytics.max_concurrent_fit", 4)

	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})

	viper.SetDefault("prometheus.enabled", true)
	viper.SetDefault("prometheus.path", "/metrics")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
