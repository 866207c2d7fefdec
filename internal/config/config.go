package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// MenuPath overrides the embedded menu when set.
	MenuPath string

	SessionTTL      time.Duration
	ShutdownTimeout time.Duration

	// CORS
	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "3000"),
		MenuPath:         os.Getenv("MENU_PATH"),
		SessionTTL:       parseDuration(getenv("SESSION_TTL", "2h"), 2*time.Hour),
		ShutdownTimeout:  parseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
