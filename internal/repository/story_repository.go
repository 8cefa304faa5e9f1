package repository

import (
	"database/sql"

	"github.com/KixPanganiban/hackrecap/internal/model"
)

type StoryRepository struct {
	db *sql.DB
}

func NewStoryRepository(db *sql.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) Exists(id int64) (bool, error) {
	var found int64
	err := r.db.QueryRow(`
		SELECT id FROM stories WHERE id = $1
	`, id).Scan(&found)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// Insert writes the discovery fields of a new story. Text, summary and image
// are left NULL for the later stages.
func (r *StoryRepository) Insert(story *model.Story) error {
	_, err := r.db.Exec(`
		INSERT INTO stories(id, title, url, time, score)
		VALUES($1, $2, $3, $4, $5)
	`, story.ID, story.Title, story.URL, story.Time, story.Score)
	return err
}

func (r *StoryRepository) PendingText() ([]model.Story, error) {
	rows, err := r.db.Query(`
		SELECT id, title, url, time, score, text, summary, image
		FROM stories
		WHERE text IS NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStories(rows)
}

func (r *StoryRepository) PendingSummary() ([]model.Story, error) {
	rows, err := r.db.Query(`
		SELECT id, title, url, time, score, text, summary, image
		FROM stories
		WHERE summary IS NULL AND text IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStories(rows)
}

func (r *StoryRepository) SetText(id int64, text, image string) error {
	_, err := r.db.Exec(`
		UPDATE stories SET text = $1, image = $2 WHERE id = $3
	`, text, image, id)
	return err
}

func (r *StoryRepository) SetSummary(id int64, summary string) error {
	_, err := r.db.Exec(`
		UPDATE stories SET summary = $1 WHERE id = $2
	`, summary, id)
	return err
}

// Feed returns summarized stories, newest first, score breaking ties.
func (r *StoryRepository) Feed(limit, offset int) ([]model.Story, error) {
	rows, err := r.db.Query(`
		SELECT id, title, url, time, score, text, summary, image
		FROM stories
		WHERE summary IS NOT NULL
		ORDER BY time DESC, score DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStories(rows)
}

func (r *StoryRepository) FeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM stories WHERE summary IS NOT NULL
	`).Scan(&total)
	return total, err
}

// LatestTime returns the newest story timestamp, or 0 when the table is empty.
func (r *StoryRepository) LatestTime() (int64, error) {
	var latest int64
	err := r.db.QueryRow(`
		SELECT time FROM stories ORDER BY time DESC LIMIT 1
	`).Scan(&latest)

	if err == sql.ErrNoRows {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return latest, nil
}

func scanStories(rows *sql.Rows) ([]model.Story, error) {
	var stories []model.Story
	for rows.Next() {
		var s model.Story
		err := rows.Scan(&s.ID, &s.Title, &s.URL, &s.Time, &s.Score, &s.Text, &s.Summary, &s.Image)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stories, nil
}
