package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

// Load resolves configuration from the environment. Every key has a
// development default; JWT_SECRET must be overridden in production.
func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/shopstock?parseTime=true")
	viper.SetDefault("JWT_SECRET", devSecret)
	viper.SetDefault("JWT_EXPIRY", time.Hour)

	cfg := Config{
		Port:        viper.GetString("PORT"),
		Env:         viper.GetString("ENV"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		JWTExpiry:   viper.GetDuration("JWT_EXPIRY"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}
