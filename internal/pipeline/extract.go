package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KixPanganiban/hackrecap/internal/model"
)

// extractTexts fills in article text and image for every row still missing
// text. A failed extraction leaves the row NULL for the next run.
func (p *Pipeline) extractTexts(ctx context.Context) error {
	stories, err := p.stories.PendingText()
	if err != nil {
		return fmt.Errorf("select stories pending text: %w", err)
	}
	slog.Info("extracting article texts", "count", len(stories))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, story := range stories {
		wg.Add(1)
		go func(story model.Story) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p.extractOne(ctx, story)
		}(story)
	}

	wg.Wait()
	slog.Info("done extracting article texts")
	return nil
}

func (p *Pipeline) extractOne(ctx context.Context, story model.Story) {
	text, image, err := p.extractor.Extract(ctx, story.URL)
	if err != nil {
		slog.Error("failed to extract article text",
			"story_id", story.ID, "title", story.Title, "failure", classify(err), "error", err)
		return
	}

	if err := p.stories.SetText(story.ID, text, image); err != nil {
		slog.Error("failed to save article text", "story_id", story.ID, "error", err)
		return
	}

	slog.Info("added text to story", "story_id", story.ID, "title", story.Title)
}
