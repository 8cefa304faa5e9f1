package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/KixPanganiban/hackrecap/internal/model"
)

func TestExtract_Success(t *testing.T) {
	repo := newTestRepo(t)
	assert.Equal(t, nil, repo.Insert(&model.Story{ID: 101, Title: "T", URL: "http://x", Time: 1700000000, Score: 5}))

	extractor := &fakeExtractor{text: "article body", image: "http://x/img.png"}
	p := New(Deps{Stories: repo, Extractor: extractor, Workers: 2})

	assert.Equal(t, nil, p.extractTexts(context.Background()))
	assert.Equal(t, 1, extractor.calls)

	pending, err := repo.PendingSummary()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))
	assert.Equal(t, "article body", pending[0].Text.String)
	assert.Equal(t, "http://x/img.png", pending[0].Image.String)
}

func TestExtract_NoImageStoredAsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	assert.Equal(t, nil, repo.Insert(&model.Story{ID: 101, Title: "T", URL: "http://x", Time: 1700000000, Score: 5}))

	extractor := &fakeExtractor{text: "article body", image: ""}
	p := New(Deps{Stories: repo, Extractor: extractor, Workers: 2})

	assert.Equal(t, nil, p.extractTexts(context.Background()))

	pending, err := repo.PendingSummary()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))
	assert.Equal(t, true, pending[0].Image.Valid)
	assert.Equal(t, "", pending[0].Image.String)
}

func TestExtract_FailureLeavesRowPending(t *testing.T) {
	repo := newTestRepo(t)
	assert.Equal(t, nil, repo.Insert(&model.Story{ID: 101, Title: "T", URL: "http://x", Time: 1700000000, Score: 5}))

	extractor := &fakeExtractor{err: errors.New("fetch failed")}
	p := New(Deps{Stories: repo, Extractor: extractor, Workers: 2})

	// The stage completes; the row stays pending for the next run.
	assert.Equal(t, nil, p.extractTexts(context.Background()))

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))
	assert.Equal(t, false, pending[0].Text.Valid)
}

func TestExtract_OnlySelectsRowsWithoutText(t *testing.T) {
	repo := newTestRepo(t)
	assert.Equal(t, nil, repo.Insert(&model.Story{ID: 101, Title: "T", URL: "http://x", Time: 1700000000, Score: 5}))
	assert.Equal(t, nil, repo.SetText(101, "already extracted", ""))

	extractor := &fakeExtractor{text: "other"}
	p := New(Deps{Stories: repo, Extractor: extractor, Workers: 2})

	assert.Equal(t, nil, p.extractTexts(context.Background()))
	assert.Equal(t, 0, extractor.calls)

	pending, err := repo.PendingSummary()
	assert.Equal(t, nil, err)
	assert.Equal(t, "already extracted", pending[0].Text.String)
}
