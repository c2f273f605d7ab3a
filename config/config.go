package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Store  StoreConfig
	Report ReportConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StoreConfig struct {
	DataDir    string
	FileName   string
	FileMode   os.FileMode
	StrictLoad bool // fail on a corrupt file instead of quarantining it
}

type ReportConfig struct {
	RecentSales int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			DataDir:    getEnv("STORE_DATA_DIR", "./data"),
			FileName:   getEnv("STORE_FILE_NAME", "sales-db.json"),
			FileMode:   getEnvFileMode("STORE_FILE_MODE", 0o644),
			StrictLoad: getEnvBool("STORE_STRICT_LOAD", false),
		},
		Report: ReportConfig{
			RecentSales: getEnvInt("REPORT_RECENT_SALES", 6),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvFileMode parses an octal permission string such as "0600".
func getEnvFileMode(key string, fallback os.FileMode) os.FileMode {
	if value, ok := os.LookupEnv(key); ok {
		if m, err := strconv.ParseUint(value, 8, 32); err == nil {
			return os.FileMode(m)
		}
	}
	return fallback
}
