package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — path to the SQLite file (":memory:" supported for tests)
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Redis — optional; empty disables the dashboard cache
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Defaults applied when a product has no configured area/ubicacion
	// at delivery time.
	AreaDefault      string `mapstructure:"AREA_DEFAULT"`
	UbicacionDefault string `mapstructure:"UBICACION_DEFAULT"`

	// Audit worker
	AuditQueueSize int `mapstructure:"AUDIT_QUEUE_SIZE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "almacen.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("AREA_DEFAULT", "a1")
	viper.SetDefault("UBICACION_DEFAULT", "u1")
	viper.SetDefault("AUDIT_QUEUE_SIZE", 256)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
