package pipeline

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/KixPanganiban/hackrecap/pkg/hackernews"
)

func TestDiscover_AdmitsFreshStory(t *testing.T) {
	repo := newTestRepo(t)
	now := nowUnix()
	client := newHNClient(t, []int64{101}, map[int64]hackernews.Item{
		101: {ID: 101, Type: "story", Title: "T", URL: "http://x", Time: now - 3600, Score: 5},
	}, nil)

	p := New(Deps{Stories: repo, HackerNews: client, Workers: 2})
	err := p.discover(context.Background())
	assert.Equal(t, nil, err)

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))

	s := pending[0]
	assert.Equal(t, int64(101), s.ID)
	assert.Equal(t, "T", s.Title)
	assert.Equal(t, "http://x", s.URL)
	assert.Equal(t, now-3600, s.Time)
	assert.Equal(t, int64(5), s.Score)
	assert.Equal(t, false, s.Text.Valid)
	assert.Equal(t, false, s.Summary.Valid)
	assert.Equal(t, false, s.Image.Valid)
}

func TestDiscover_SkipsStoryOlderThanADay(t *testing.T) {
	repo := newTestRepo(t)
	now := nowUnix()
	client := newHNClient(t, []int64{101}, map[int64]hackernews.Item{
		101: {ID: 101, Type: "story", Title: "T", URL: "http://x", Time: now - 90000, Score: 5},
	}, nil)

	p := New(Deps{Stories: repo, HackerNews: client, Workers: 2})
	assert.Equal(t, nil, p.discover(context.Background()))

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(pending))
}

func TestDiscover_SkipsIneligibleItems(t *testing.T) {
	repo := newTestRepo(t)
	now := nowUnix()
	client := newHNClient(t, []int64{201, 202, 203, 204, 205}, map[int64]hackernews.Item{
		201: {ID: 201, Type: "job", Title: "Job", URL: "http://j", Time: now - 100, Score: 1},
		202: {ID: 202, Type: "story", Title: "", URL: "http://x", Time: now - 100, Score: 1},
		203: {ID: 203, Type: "story", Title: "No URL", URL: "", Time: now - 100, Score: 1},
		204: {ID: 204, Type: "story", Title: "Dead", URL: "http://d", Time: now - 100, Score: 1, Dead: true},
		// 205 answers null (deleted upstream).
	}, nil)

	p := New(Deps{Stories: repo, HackerNews: client, Workers: 2})
	assert.Equal(t, nil, p.discover(context.Background()))

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(pending))
}

func TestDiscover_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	now := nowUnix()
	client := newHNClient(t, []int64{101}, map[int64]hackernews.Item{
		101: {ID: 101, Type: "story", Title: "T", URL: "http://x", Time: now - 3600, Score: 5},
	}, nil)

	p := New(Deps{Stories: repo, HackerNews: client, Workers: 2})
	assert.Equal(t, nil, p.discover(context.Background()))
	assert.Equal(t, nil, p.discover(context.Background()))

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))
}

func TestDiscover_DetailFailureSkipsOnlyThatItem(t *testing.T) {
	repo := newTestRepo(t)
	now := nowUnix()
	client := newHNClient(t, []int64{101, 102}, map[int64]hackernews.Item{
		102: {ID: 102, Type: "story", Title: "Survivor", URL: "http://s", Time: now - 60, Score: 3},
	}, map[int64]bool{101: true})

	p := New(Deps{Stories: repo, HackerNews: client, Workers: 2})
	assert.Equal(t, nil, p.discover(context.Background()))

	pending, err := repo.PendingText()
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(pending))
	assert.Equal(t, int64(102), pending[0].ID)
}

func TestEligible(t *testing.T) {
	now := nowUnix()
	cutoff := now - 86400

	base := hackernews.Item{ID: 1, Type: "story", Title: "T", URL: "http://x", Time: now - 10}
	assert.Equal(t, true, eligible(&base, cutoff))

	old := base
	old.Time = cutoff - 1
	assert.Equal(t, false, eligible(&old, cutoff))

	deleted := base
	deleted.Deleted = true
	assert.Equal(t, false, eligible(&deleted, cutoff))
}
