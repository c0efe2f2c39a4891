// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr         string        // CHESS_ADDR
	AllowOrigins string        // CHESS_ALLOW_ORIGINS, comma separated
	LogLevel     log.Level     // CHESS_LOG_LEVEL
	WSBuffer     int           // CHESS_WS_BUFFER, websocket read/write buffer bytes
	GameTTL      time.Duration // CHESS_GAME_TTL, 0 keeps idle games forever
}

func Default() Config {
	return Config{
		Addr:         ":3000",
		AllowOrigins: "http://localhost:5173",
		LogLevel:     log.LevelInfo,
		WSBuffer:     1024,
		GameTTL:      30 * time.Minute,
	}
}

// Load starts from Default and applies every CHESS_* variable that is set.
func Load() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv("CHESS_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("CHESS_ALLOW_ORIGINS"); ok && v != "" {
		cfg.AllowOrigins = v
	}
	if v, ok := os.LookupEnv("CHESS_LOG_LEVEL"); ok && v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	if v, ok := os.LookupEnv("CHESS_WS_BUFFER"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("CHESS_WS_BUFFER %q: want a positive integer", v)
		}
		cfg.WSBuffer = n
	}
	if v, ok := os.LookupEnv("CHESS_GAME_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("CHESS_GAME_TTL %q: want a duration such as 30m", v)
		}
		cfg.GameTTL = d
	}
	return cfg, nil
}

// Origins splits AllowOrigins into its entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
