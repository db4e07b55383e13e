package shared

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	OutputDir   string
	OutputMkdir bool
	CatalogFile string
	MetricsFile string
}

func Load() Config {
	boolean := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		OutputDir:   env("OUTPUT_DIR", "./rooms"),
		OutputMkdir: boolean("OUTPUT_MKDIR", false),
		CatalogFile: env("CATALOG_FILE", ""),
		MetricsFile: env("METRICS_FILE", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
