package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KixPanganiban/hackrecap/internal/model"
)

// summarizeTexts produces a summary for every row that has text but no
// summary yet. Rows with empty text are skipped outright, not failed.
func (p *Pipeline) summarizeTexts(ctx context.Context) error {
	stories, err := p.stories.PendingSummary()
	if err != nil {
		return fmt.Errorf("select stories pending summary: %w", err)
	}
	slog.Info("summarizing stories", "count", len(stories))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, story := range stories {
		wg.Add(1)
		go func(story model.Story) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p.summarizeOne(ctx, story)
		}(story)
	}

	wg.Wait()
	slog.Info("done summarizing stories")
	return nil
}

func (p *Pipeline) summarizeOne(ctx context.Context, story model.Story) {
	if story.Text.String == "" {
		slog.Info("skipping story with empty text", "story_id", story.ID)
		return
	}

	summary, err := p.summarizer.Summarize(ctx, story.Text.String)
	if err != nil {
		slog.Error("failed to summarize story",
			"story_id", story.ID, "title", story.Title, "failure", classify(err), "error", err)
		return
	}

	if err := p.stories.SetSummary(story.ID, summary); err != nil {
		slog.Error("failed to save summary", "story_id", story.ID, "error", err)
		return
	}

	slog.Info("added summary to story", "story_id", story.ID, "title", story.Title)
}
