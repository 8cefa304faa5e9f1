// Package pipeline runs the three enrichment stages over the story store:
// discovery fills in new rows, extraction fills text, summarization fills
// summaries. Stages run strictly in sequence; items within a stage run on a
// bounded worker pool.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/KixPanganiban/hackrecap/internal/model"
	"github.com/KixPanganiban/hackrecap/internal/repository"
	"github.com/KixPanganiban/hackrecap/pkg/extract"
	"github.com/KixPanganiban/hackrecap/pkg/hackernews"
)

// Summarizer produces the final synopsis for one article's text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Cache is flushed once after a full run so readers see new summaries.
type Cache interface {
	Flush(ctx context.Context) error
}

// StoryStore is the slice of the repository the pipeline writes through.
type StoryStore interface {
	Exists(id int64) (bool, error)
	Insert(story *model.Story) error
	PendingText() ([]model.Story, error)
	PendingSummary() ([]model.Story, error)
	SetText(id int64, text, image string) error
	SetSummary(id int64, summary string) error
}

var _ StoryStore = (*repository.StoryRepository)(nil)

type Deps struct {
	Stories    StoryStore
	HackerNews *hackernews.Client
	Extractor  extract.Extractor
	Summarizer Summarizer
	Cache      Cache
	Workers    int
}

type Pipeline struct {
	stories    StoryStore
	hn         *hackernews.Client
	extractor  extract.Extractor
	summarizer Summarizer
	cache      Cache
	workers    int
}

func New(deps Deps) *Pipeline {
	workers := deps.Workers
	if workers < 1 {
		workers = 8
	}
	return &Pipeline{
		stories:    deps.Stories,
		hn:         deps.HackerNews,
		extractor:  deps.Extractor,
		summarizer: deps.Summarizer,
		cache:      deps.Cache,
		workers:    workers,
	}
}

// Run executes one full enrichment pass. A stage failing outright (for
// example the story index being unreachable) is logged and the later stages
// still run: they operate on whatever rows are already pending.
func (p *Pipeline) Run(ctx context.Context) {
	if err := p.discover(ctx); err != nil {
		slog.Error("discovery failed", "error", err)
	}

	if err := p.extractTexts(ctx); err != nil {
		slog.Error("extraction failed", "error", err)
	}

	if err := p.summarizeTexts(ctx); err != nil {
		slog.Error("summarization failed", "error", err)
	}

	if p.cache == nil {
		return
	}
	if err := p.cache.Flush(ctx); err != nil {
		slog.Error("failed to flush response cache", "error", err)
		return
	}
	slog.Info("flushed response cache")
}
