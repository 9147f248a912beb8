package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa lo que el proceso lee del entorno al arrancar.
type Config struct {
	Addr string

	// DSN de Postgres. Vacío => storage in-memory.
	DatabaseDSN string

	// Redis opcional para cachear el overview por país.
	RedisAddr        string
	RedisDB          int
	OverviewCacheTTL time.Duration

	// Si es true, se cargan los datos demo al arrancar.
	SeedOnStart bool

	LogLevel  string
	LogFormat string
	AppName   string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load lee archivos .env (no pisan variables ya exportadas) y luego el entorno.
// Sin argumentos el .env es opcional; un archivo nombrado tiene que existir.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	return Config{
		Addr:             addr,
		DatabaseDSN:      dsn,
		RedisAddr:        strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		OverviewCacheTTL: getEnvDuration("OVERVIEW_CACHE_TTL", 30*time.Second),
		// Con memoria no hay nada que mostrar sin seeds; con Postgres se siembra a mano (friends seed).
		SeedOnStart:  getEnvBool("SEED_ON_START", dsn == ""),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		AppName:      getEnv("APP_NAME", "friends-directory"),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}
