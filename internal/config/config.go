package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	AppEnv      string `env:"APP_ENV" env-default:"development"`
	AppURL      string `env:"APP_URL" env-default:"https://sitelab.com"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`

	HCaptchaSecret string `env:"HCAPTCHA_SECRET_KEY"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	EmailFrom  string `env:"EMAIL_FROM" env-default:"SiteLab <hello@sitelab.com>"`
	AdminEmail string `env:"ADMIN_EMAIL" env-default:"admin@sitelab.com"`

	JWTSecret string `env:"JWT_SECRET" env-required:"true"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
