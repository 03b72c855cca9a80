package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The service runs against MySQL in
// production and against a local SQLite file otherwise, selected by
// DB_DRIVER.
type Config struct {
	Env         string   // application environment (e.g. "dev", "prod")
	Port        string   // HTTP port to listen on
	DBDriver    string   // "mysql" or "sqlite3"
	DBUser      string   // database username (mysql)
	DBPass      string   // database password (mysql, optional)
	DBHost      string   // database host address (mysql)
	DBPort      string   // database port number (mysql)
	DBName      string   // database name (mysql)
	DBPath      string   // database file path (sqlite3)
	CORSOrigins []string // origins allowed to call the API with credentials
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.  MySQL connection variables are required
// only when that driver is selected; SQLite defaults keep local
// development zero-config.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "8000"),
		DBDriver:    envStr("DB_DRIVER", "sqlite3"),
		DBPath:      envStr("DB_PATH", "./cinematch.db"),
		CORSOrigins: strings.Split(envStr("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
	if cfg.DBDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
