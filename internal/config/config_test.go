package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CHESS_ADDR", "CHESS_ALLOW_ORIGINS", "CHESS_LOG_LEVEL", "CHESS_WS_BUFFER", "CHESS_GAME_TTL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v want %+v", cfg, Default())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":8080")
	t.Setenv("CHESS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("CHESS_LOG_LEVEL", "DEBUG")
	t.Setenv("CHESS_WS_BUFFER", "4096")
	t.Setenv("CHESS_GAME_TTL", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.LogLevel != log.LevelDebug || cfg.WSBuffer != 4096 || cfg.GameTTL != 0 {
		t.Fatalf("got %+v", cfg)
	}
	if got, want := cfg.Origins(), []string{"http://a.test", "http://b.test"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("origins %v want %v", got, want)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"CHESS_LOG_LEVEL": "loud",
		"CHESS_WS_BUFFER": "-1",
		"CHESS_GAME_TTL":  "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s accepted", key, value)
			}
		})
	}
}

func TestGameTTLParse(t *testing.T) {
	t.Setenv("CHESS_GAME_TTL", "90s")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GameTTL != 90*time.Second {
		t.Fatalf("ttl %v", cfg.GameTTL)
	}
}
