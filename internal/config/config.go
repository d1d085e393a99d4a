package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"MIDAS"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Timezone string `envconfig:"APP_TIMEZONE" default:"America/Sao_Paulo"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"midas"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret     string        `envconfig:"JWT_SECRET" required:"true"`
		Audience   string        `envconfig:"JWT_AUDIENCE" default:"MIDAS"`
		AccessTTL  time.Duration `envconfig:"JWT_ACCESS_TTL" default:"24h"`
		RefreshTTL time.Duration `envconfig:"JWT_REFRESH_TTL" default:"72h"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Finance struct {
		FallbackSalary        decimal.Decimal `envconfig:"FALLBACK_SALARY" default:"2500"`
		SalaryBusinessDay     int             `envconfig:"SALARY_BUSINESS_DAY" default:"5"`
		SaturdayIsBusinessDay bool            `envconfig:"SATURDAY_IS_BUSINESS_DAY" default:"true"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Location resolves the configured timezone. "Today" for reports and
// installment schedules is computed in this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.App.Timezone, err)
	}

	return loc, nil
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}

	if cfg.Finance.SalaryBusinessDay < 1 || cfg.Finance.SalaryBusinessDay > 20 {
		return nil, fmt.Errorf("SALARY_BUSINESS_DAY must be between 1 and 20, got %d", cfg.Finance.SalaryBusinessDay)
	}

	if !cfg.Finance.FallbackSalary.IsPositive() {
		return nil, fmt.Errorf("FALLBACK_SALARY must be positive")
	}

	return &cfg, nil
}
