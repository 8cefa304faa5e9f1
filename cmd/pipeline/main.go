package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/KixPanganiban/hackrecap/db"
	"github.com/KixPanganiban/hackrecap/internal/config"
	"github.com/KixPanganiban/hackrecap/internal/pipeline"
	"github.com/KixPanganiban/hackrecap/internal/repository"
	"github.com/KixPanganiban/hackrecap/pkg/extract"
	"github.com/KixPanganiban/hackrecap/pkg/hackernews"
	"github.com/KixPanganiban/hackrecap/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache pipeline.Cache
	if err := db.ConnectRedis(cfg.RedisURL); err != nil {
		slog.Warn("redis unavailable, cache flush will be skipped", "error", err)
	} else {
		defer db.CloseRedis()
		cache = db.NewCache(db.Redis)
	}

	var completions llm.CompletionClient
	switch cfg.LLMProvider {
	case "anthropic":
		completions = llm.NewAnthropicClient(cfg.AnthropicKey, cfg.LLMModel)
	default:
		completions = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.LLMModel)
	}

	tokenizer, err := llm.NewTiktokenTokenizer(cfg.LLMModel)
	if err != nil {
		log.Fatalf("error loading tokenizer: %v", err)
	}

	p := pipeline.New(pipeline.Deps{
		Stories:    repository.NewStoryRepository(db.DB),
		HackerNews: hackernews.NewClient(cfg.HNBaseURL),
		Extractor:  extract.NewReadabilityExtractor(30 * time.Second),
		Summarizer: llm.NewSummarizer(completions, tokenizer, cfg.MaxChunkTokens, cfg.ReduceThresholdTokens),
		Cache:      cache,
		Workers:    cfg.FetchWorkers,
	})

	p.Run(context.Background())
}
