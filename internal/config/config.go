package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
	Practice struct {
		Timezone        string `yaml:"timezone"`
		SessionIdleTTL  string `yaml:"session_idle_ttl"`
		SweepInterval   string `yaml:"sweep_interval"`
		FeedbackTimeout string `yaml:"feedback_timeout"`
	} `yaml:"practice"`
	Questions struct {
		PoolTTL  string `yaml:"pool_ttl"`
		PoolSize int    `yaml:"pool_size"`
		BankTTL  string `yaml:"bank_ttl"`
	} `yaml:"questions"`
	LLM struct {
		Provider    string `yaml:"provider"`
		Model       string `yaml:"model"`
		APIKey      string `yaml:"api_key"`
		BaseURL     string `yaml:"base_url"`
		MaxAttempts int    `yaml:"max_attempts"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"llm"`
}

// Load reads YAML config from path and applies environment overrides. A .env
// file in the working directory is loaded first if present. A missing config
// file is not an error; the environment alone is enough to run.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case !os.IsNotExist(err):
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	override(&cfg.Postgres.URL, "DATABASE_URL")
	override(&cfg.SQLite.Path, "SQLITE_PATH")
	override(&cfg.Redis.Addr, "REDIS_ADDR")
	override(&cfg.Redis.Password, "REDIS_PASSWORD")
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if db, err := strconv.Atoi(raw); err == nil {
			cfg.Redis.DB = db
		}
	}
	override(&cfg.Practice.Timezone, "PRACTICE_TIMEZONE")
	override(&cfg.LLM.Provider, "LLM_PROVIDER")
	override(&cfg.LLM.Model, "LLM_MODEL")
	override(&cfg.LLM.BaseURL, "LLM_BASE_URL")

	// Provider-specific keys only apply when no explicit key is configured.
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "gemini":
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	override(&cfg.LLM.APIKey, "LLM_API_KEY")
}

func override(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// Location resolves an IANA zone name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
