// README: Config loader (viper) for HTTP, reply mode, sessions, and intent keyword sets.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Mode selects the reply strategy for a deployment. The rule engine and the
// LLM gateway are mutually exclusive; they are never composed.
const (
	ModeRules   = "rules"
	ModeGateway = "gateway"
)

// IntentConfig carries the keyword groups the classifier matches, in rule
// order, plus the time-token table used by the extractor. All matching is
// done against the lower-cased utterance, so keywords are normalized to
// lower case at load time.
type IntentConfig struct {
	ConfirmModifyPhrases   []string
	ConfirmCancelPhrases   []string
	CancelOperationPhrases []string
	ModifyKeywords         []string
	CancelKeywords         []string
	NotesKeywords          []string
	OrdersKeywords         []string
	GreetingKeywords       []string

	// TimeTokens maps a recognized date/day token to its canonical service
	// timestamp. The domain uses a fixed slot calendar, not date parsing.
	TimeTokens map[string]time.Time
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Reply struct {
		Mode string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Session struct {
		TTL      time.Duration
		Capacity int
	}
	RateLimit struct {
		PerMinute int
		Burst     int
	}
	Logger struct {
		Level string
	}
	Intents IntentConfig
}

// Load reads config.yaml (searched in ./config, ., /etc/hestia/) and the
// environment (HESTIA_HTTP_ADDR, HESTIA_AI_GEMINIKEY, ...). A missing file is
// fine; defaults cover a full local deployment in rules mode.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/hestia/")

	v.SetEnvPrefix("HESTIA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.CORSOrigins = v.GetStringSlice("http.cors_origins")
	cfg.Reply.Mode = v.GetString("reply.mode")
	cfg.AI.GeminiKey = v.GetString("ai.geminikey")
	cfg.AI.Model = v.GetString("ai.model")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.Capacity = v.GetInt("session.capacity")
	cfg.RateLimit.PerMinute = v.GetInt("ratelimit.perminute")
	cfg.RateLimit.Burst = v.GetInt("ratelimit.burst")
	cfg.Logger.Level = v.GetString("logger.level")

	cfg.Intents.ConfirmModifyPhrases = lowerAll(v.GetStringSlice("intents.confirm_modify"))
	cfg.Intents.ConfirmCancelPhrases = lowerAll(v.GetStringSlice("intents.confirm_cancel"))
	cfg.Intents.CancelOperationPhrases = lowerAll(v.GetStringSlice("intents.cancel_operation"))
	cfg.Intents.ModifyKeywords = lowerAll(v.GetStringSlice("intents.modify"))
	cfg.Intents.CancelKeywords = lowerAll(v.GetStringSlice("intents.cancel"))
	cfg.Intents.NotesKeywords = lowerAll(v.GetStringSlice("intents.notes"))
	cfg.Intents.OrdersKeywords = lowerAll(v.GetStringSlice("intents.orders"))
	cfg.Intents.GreetingKeywords = lowerAll(v.GetStringSlice("intents.greeting"))

	tokens, err := parseTimeTokens(v.GetStringMapString("intents.time_tokens"))
	if err != nil {
		return Config{}, err
	}
	cfg.Intents.TimeTokens = tokens

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Reply.Mode {
	case ModeRules, ModeGateway:
	default:
		return fmt.Errorf("reply.mode must be %q or %q, got %q", ModeRules, ModeGateway, cfg.Reply.Mode)
	}
	if cfg.Reply.Mode == ModeGateway && cfg.AI.GeminiKey == "" {
		return fmt.Errorf("ai.geminikey is required in %s mode", ModeGateway)
	}
	if cfg.Session.Capacity <= 0 {
		return fmt.Errorf("session.capacity must be positive")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.cors_origins", []string{"http://localhost:8080", "http://127.0.0.1:8080"})
	v.SetDefault("reply.mode", ModeRules)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.capacity", 4096)
	v.SetDefault("ratelimit.perminute", 120)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("logger.level", "info")

	// Bilingual defaults; a deployment can swap these for another locale
	// without a rebuild. Group order in the classifier is fixed; only the
	// words inside each group are configurable.
	v.SetDefault("intents.confirm_modify", []string{"confirm modify", "确认修改"})
	v.SetDefault("intents.confirm_cancel", []string{"confirm cancel", "确认取消"})
	v.SetDefault("intents.cancel_operation", []string{"cancel operation", "取消操作"})
	v.SetDefault("intents.modify", []string{"modify", "adjust", "change", "修改", "调整", "更改"})
	v.SetDefault("intents.cancel", []string{"cancel", "withdraw", "取消", "退掉"})
	v.SetDefault("intents.notes", []string{"note", "record", "service info", "笔记", "记录", "服务信息"})
	v.SetDefault("intents.orders", []string{"order", "which orders", "who will serve", "service person", "订单", "有哪些订单", "谁来服务", "服务人员"})
	v.SetDefault("intents.greeting", []string{"hello", "hi", "你好", "您好"})
	v.SetDefault("intents.time_tokens", map[string]string{
		"2023-11-02": "2023-11-02 14:00:00",
		"saturday":   "2023-11-02 14:00:00",
		"周六":         "2023-11-02 14:00:00",
	})
}

const timeLayout = "2006-01-02 15:04:05"

func parseTimeTokens(raw map[string]string) (map[string]time.Time, error) {
	tokens := make(map[string]time.Time, len(raw))
	for token, value := range raw {
		t, err := time.Parse(timeLayout, value)
		if err != nil {
			return nil, fmt.Errorf("intents.time_tokens[%q]: %w", token, err)
		}
		tokens[strings.ToLower(token)] = t
	}
	return tokens, nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
