// Package config collects every environment-backed setting into one struct
// built at process start and passed down explicitly.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	HNBaseURL    string
	LLMProvider  string
	LLMModel     string
	OpenAIKey    string
	AnthropicKey string
	FrontendURL  string
	Port         string

	FetchWorkers          int
	MaxChunkTokens        int
	ReduceThresholdTokens int
}

func Load() Config {
	return Config{
		DatabaseURL:  envString("DATABASE_URL", "hackrecap.db"),
		RedisURL:     envString("REDIS_URL", "redis://localhost:6379/0"),
		HNBaseURL:    envString("HN_BASE_URL", "https://hacker-news.firebaseio.com"),
		LLMProvider:  envString("LLM_PROVIDER", "openai"),
		LLMModel:     envString("LLM_MODEL", "gpt-4o-mini"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		Port:         envString("PORT", "8080"),

		FetchWorkers:          envInt("FETCH_WORKERS", 8),
		MaxChunkTokens:        envInt("MAX_CHUNK_TOKENS", 500),
		ReduceThresholdTokens: envInt("REDUCE_THRESHOLD_TOKENS", 4000),
	}
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
