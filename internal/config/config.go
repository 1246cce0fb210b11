package config

import "os"

const (
	defaultStorePath = "./workshop.json"
	defaultDBPath    = "./quotes.db"
	defaultPort      = "8080"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	StorePath string
	DBPath    string
	Port      string
	Env       string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		StorePath: os.Getenv("STORE_PATH"),
		DBPath:    os.Getenv("DB_PATH"),
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
	}

	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	return cfg
}

// IsDev reports whether the app is running in a development environment.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "dev"
}
