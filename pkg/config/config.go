package config

import "time"

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig configures the ride store. An empty URL is valid: the
// service then runs entirely on the synthetic dataset.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig configures the result cache backend. An empty URL selects
// the in-memory fallback cache.
type RedisConfig struct {
	URL         string        `mapstructure:"url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	PoolSize    int           `mapstructure:"pool_size"`
}

// CacheConfig holds the per-view result TTLs.
type CacheConfig struct {
	DemandTTL         time.Duration `mapstructure:"demand_ttl"`
	PeakHoursTTL      time.Duration `mapstructure:"peak_hours_ttl"`
	BottlenecksTTL    time.Duration `mapstructure:"bottlenecks_ttl"`
	FleetTTL          time.Duration `mapstructure:"fleet_ttl"`
	SustainabilityTTL time.Duration `mapstructure:"sustainability_ttl"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type AnalyticsConfig struct {
	FetchLimit       int `mapstructure:"fetch_limit"`
	MinLiveRecords   int `mapstructure:"min_live_records"`
	DefaultHorizon   int `mapstructure:"default_horizon"`
	ForestSize       int `mapstructure:"forest_size"`
	ForestDepth      int `mapstructure:"forest_depth"`
	MaxConcurrentFit int `mapstructure:"max_concurrent_fit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
