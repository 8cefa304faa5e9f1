package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KixPanganiban/hackrecap/internal/model"
	"github.com/KixPanganiban/hackrecap/pkg/hackernews"
)

const admissionWindow = 24 * time.Hour

// discover pulls the current top-story ids, fetches details concurrently and
// admits eligible new stories. Admission runs sequentially in this goroutine
// as detail fetches complete.
func (p *Pipeline) discover(ctx context.Context) error {
	ids, err := p.hn.TopStories(ctx)
	if err != nil {
		return fmt.Errorf("list top stories: %w", err)
	}
	slog.Info("retrieved top stories", "count", len(ids))

	type result struct {
		id   int64
		item *hackernews.Item
		err  error
	}

	results := make(chan result)
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			item, err := p.hn.Item(ctx, id)
			results <- result{id: id, item: item, err: err}
		}(id)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	cutoff := time.Now().Add(-admissionWindow).Unix()
	var added, skipped, failed int
	for res := range results {
		if res.err != nil {
			slog.Error("failed to fetch story detail",
				"story_id", res.id, "failure", classify(res.err), "error", res.err)
			failed++
			continue
		}

		ok, err := p.admit(res.item, cutoff)
		if err != nil {
			slog.Error("failed to admit story", "story_id", res.id, "error", err)
			failed++
			continue
		}
		if ok {
			added++
		} else {
			skipped++
		}
	}

	slog.Info("discovery complete", "added", added, "skipped", skipped, "failed", failed)
	return nil
}

// admit inserts item if it is a fresh, well-formed story not already stored.
// Returns whether a row was written.
func (p *Pipeline) admit(item *hackernews.Item, cutoff int64) (bool, error) {
	if item == nil {
		return false, nil
	}

	exists, err := p.stories.Exists(item.ID)
	if err != nil {
		return false, err
	}
	if exists || !eligible(item, cutoff) {
		return false, nil
	}

	story := model.Story{
		ID:    item.ID,
		Title: item.Title,
		URL:   item.URL,
		Time:  item.Time,
		Score: item.Score,
	}
	if err := p.stories.Insert(&story); err != nil {
		return false, err
	}

	slog.Info("added story", "story_id", item.ID, "title", item.Title)
	return true, nil
}

func eligible(item *hackernews.Item, cutoff int64) bool {
	return item.Type == "story" &&
		item.URL != "" &&
		item.Title != "" &&
		!item.Dead &&
		!item.Deleted &&
		item.Time >= cutoff
}
