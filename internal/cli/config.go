package cli

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-level settings outside the weather gateway.
type Config struct {
	ReplyDelayMs  int
	LogLevel      string
	MetricsAddr   string
	KnowledgeFile string
	CalendarFile  string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ReplyDelayMs: 500,
		LogLevel:     "info",
	}
}

// LoadConfig reads settings from environment variables, keeping defaults
// for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SPROUT_REPLY_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ReplyDelayMs = n
		}
	}
	if v := os.Getenv("SPROUT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.MetricsAddr = os.Getenv("SPROUT_METRICS_ADDR")
	cfg.KnowledgeFile = os.Getenv("SPROUT_KNOWLEDGE_FILE")
	cfg.CalendarFile = os.Getenv("SPROUT_CALENDAR_FILE")

	return cfg
}

// ReplyDelay returns the chat reply pacing as a duration.
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMs) * time.Millisecond
}
