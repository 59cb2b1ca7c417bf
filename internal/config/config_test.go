// README: Config loader tests (defaults, env overrides, validation).
package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Addr != ":8000" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Reply.Mode != ModeRules {
		t.Errorf("mode = %q", cfg.Reply.Mode)
	}
	if cfg.Session.TTL != 30*time.Minute || cfg.Session.Capacity != 4096 {
		t.Errorf("session = %v/%d", cfg.Session.TTL, cfg.Session.Capacity)
	}
	if len(cfg.Intents.ModifyKeywords) == 0 || len(cfg.Intents.GreetingKeywords) == 0 {
		t.Fatal("intent keyword defaults missing")
	}

	want, err := time.Parse(timeLayout, "2023-11-02 14:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Intents.TimeTokens["saturday"]; !got.Equal(want) {
		t.Errorf("time token saturday = %v, want %v", got, want)
	}
}

func TestLoadKeywordsAreLowercased(t *testing.T) {
	t.Setenv("HESTIA_INTENTS_GREETING", "Hello HI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, kw := range cfg.Intents.GreetingKeywords {
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q not lowercased", kw)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HESTIA_HTTP_ADDR", ":9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9100" {
		t.Errorf("addr = %q, want :9100", cfg.HTTP.Addr)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	t.Setenv("HESTIA_REPLY_MODE", "hybrid")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown reply mode")
	}
}

func TestLoadGatewayNeedsKey(t *testing.T) {
	t.Setenv("HESTIA_REPLY_MODE", ModeGateway)

	if _, err := Load(); err == nil {
		t.Fatal("gateway mode without an API key must fail validation")
	}

	t.Setenv("HESTIA_AI_GEMINIKEY", "test-key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with key: %v", err)
	}
	if cfg.Reply.Mode != ModeGateway {
		t.Errorf("mode = %q", cfg.Reply.Mode)
	}
}

func TestLoadRejectsZeroTTL(t *testing.T) {
	t.Setenv("HESTIA_SESSION_TTL", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a zero session TTL")
	}
}
