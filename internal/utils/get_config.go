package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	AppEnv string `yaml:"APP_ENV"`
	Port   string `yaml:"PORT"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
	SQLitePath string `yaml:"SQLITE_PATH"`

	// HTTP shell
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// JWT
	AuthEnabled bool   `yaml:"AUTH_ENABLED"`
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTIssuer   string `yaml:"JWT_ISSUER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

func DefaultConfig() Config {
	return Config{
		AppEnv:     "development",
		Port:       "1234",
		DBDriver:   "postgres",
		DBPort:     "5432",
		DBSSLMode:  "disable",
		DBTimeZone: "UTC",
		SQLitePath: "recipes.db",
		JWTIssuer:  "RECIPE-SHARE",
	}
}

// LoadConfig reads the yaml file at path (a missing file is not an error) and
// then lets environment variables override individual keys. Outside production
// a local .env file is loaded first.
func LoadConfig(path string) (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warnf("error loading .env file: %v", err)
		}
	}

	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing YAML file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Infof("config file %s not found, using defaults and environment", path)
	default:
		return Config{}, fmt.Errorf("error reading YAML file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	stringKeys := map[string]*string{
		"APP_ENV":        &cfg.AppEnv,
		"PORT":           &cfg.Port,
		"DB_DRIVER":      &cfg.DBDriver,
		"DB_USER":        &cfg.DBUser,
		"DB_NAME":        &cfg.DBName,
		"DB_PASSWORD":    &cfg.DBPassword,
		"DB_PORT":        &cfg.DBPort,
		"DB_HOST":        &cfg.DBHost,
		"DB_SSLMODE":     &cfg.DBSSLMode,
		"DB_TIMEZONE":    &cfg.DBTimeZone,
		"SQLITE_PATH":    &cfg.SQLitePath,
		"LOG_FILE":       &cfg.LogFile,
		"JWT_SECRET":     &cfg.JWTSecret,
		"JWT_ISSUER":     &cfg.JWTIssuer,
		"AWS_S3_BUCKET":  &cfg.AWSS3Bucket,
		"AWS_S3_REGION":  &cfg.AWSS3Region,
		"AWS_ACCESS_KEY": &cfg.AWSAccessKey,
		"AWS_SECRET_KEY": &cfg.AWSSecretKey,
	}
	for key, dst := range stringKeys {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_MAX %q: %w", v, err)
		}
		cfg.RateLimitMax = n
	}

	if v, ok := os.LookupEnv("AUTH_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUTH_ENABLED %q: %w", v, err)
		}
		cfg.AuthEnabled = b
	}

	return nil
}
