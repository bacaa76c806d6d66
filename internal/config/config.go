// Package config holds the service configuration. Values are layered:
// defaults from New, an optional YAML file and TALENT_ environment variables.
package config

import (
	"time"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	JWT      JWTConfig      `koanf:"jwt"`
	Matching MatchingConfig `koanf:"matching"`
	Seed     SeedConfig     `koanf:"seed"`
}

type AppConfig struct {
	AppName     string `koanf:"name"`
	Environment string `koanf:"env"`
	HTTPPort    string `koanf:"http_port"`
	// OpsPort serves /metrics and the websocket hub.
	OpsPort  string `koanf:"ops_port"`
	LogJSON  bool   `koanf:"log_json"`
	LogDebug bool   `koanf:"log_debug"`
}

type DatabaseConfig struct {
	DBHost     string `koanf:"host"`
	DBPort     string `koanf:"port"`
	DBName     string `koanf:"name"`
	DBUser     string `koanf:"user"`
	DBPassword string `koanf:"password"`
	DBSSLMode  string `koanf:"ssl_mode"`

	ConnectTimeout        time.Duration `koanf:"connect_timeout"`
	PoolMaxConns          int32         `koanf:"pool_max_conns"`
	PoolMinConns          int32         `koanf:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `koanf:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `koanf:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `koanf:"pool_health_check_period"`

	MigrationsDir string `koanf:"migrations_dir"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

type JWTConfig struct {
	AccessSecret     string        `koanf:"access_secret"`
	RefreshSecret    string        `koanf:"refresh_secret"`
	AccessExpiresIn  time.Duration `koanf:"access_expires_in"`
	RefreshExpiresIn time.Duration `koanf:"refresh_expires_in"`
}

type MatchingConfig struct {
	// FetchTimeout bounds loading the opening and the candidate pool.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// SeedConfig describes the HR account created on an empty database.
type SeedConfig struct {
	RunOnStart    bool   `koanf:"run_on_start"`
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`
}

func New() *Config {
	return &Config{
		App: AppConfig{
			AppName:     "talent-match",
			Environment: "development",
			HTTPPort:    "8080",
			OpsPort:     "9090",
		},
		Database: DatabaseConfig{
			DBHost:         "localhost",
			DBPort:         "5432",
			DBName:         "talent_match",
			DBUser:         "postgres",
			DBSSLMode:      "disable",
			ConnectTimeout: 5 * time.Second,
			PoolMaxConns:   10,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  10 * time.Minute,
		},
		JWT: JWTConfig{
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
		Matching: MatchingConfig{
			FetchTimeout: 5 * time.Second,
			CacheTTL:     time.Minute,
		},
		Seed: SeedConfig{
			AdminEmail: "hr@talent-match.local",
		},
	}
}
