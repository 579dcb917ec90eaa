package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName     string `env:"DB_NAME" env-default:"literary_cms"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	JWTSecret          string `env:"JWT_SECRET" env-default:"your-secret-key-change-this-in-production"`
	JWTExpirationHours int    `env:"JWT_EXPIRATION_HOURS" env-default:"24"`

	LoginMaxAttempts   int `env:"LOGIN_MAX_ATTEMPTS" env-default:"5"`
	LoginWindowMinutes int `env:"LOGIN_WINDOW_MINUTES" env-default:"15"`
	LoginBlockMinutes  int `env:"LOGIN_BLOCK_MINUTES" env-default:"30"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment itself may carry
	// everything.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	JWTSecret = []byte(cfg.JWTSecret)
	JWTExpiration = time.Duration(cfg.JWTExpirationHours) * time.Hour

	return &cfg, nil
}

func (c *Config) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowMinutes) * time.Minute
}

func (c *Config) LoginBlock() time.Duration {
	return time.Duration(c.LoginBlockMinutes) * time.Minute
}
