package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// DATABASE_URL wins over the discrete DB_* vars when set.
	DatabaseURL string

	DB DBConfig

	JWT JWTConfig

	// AllowedOrigins is a comma-separated allowlist of origins allowed to call
	// the API from the browser frontend. Example:
	//   https://otoman.example.com,http://localhost:3000
	AllowedOrigins []string

	// InspectionPrice is the fixed price (IDR) assigned to every inspection
	// order at creation. There is no dynamic pricing.
	InspectionPrice decimal.Decimal
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8000"
		}
	}

	price, err := decimal.NewFromString(env("INSPECTION_PRICE", "350000"))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		price = decimal.NewFromInt(350000)
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "otoman"),
			User:     env("DB_USER", "otoman"),
			Password: env("DB_PASSWORD", "otoman"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Issuer: env("JWT_ISSUER", "otoman"),
		},
		AllowedOrigins:  envList("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		InspectionPrice: price,
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
