package model

import "database/sql"

// Story is a single ingested article reference plus its enrichment fields.
// Text, Summary and Image stay NULL until the matching pipeline stage
// succeeds; a NULL column is what marks a row as pending for that stage.
type Story struct {
	ID      int64
	Title   string
	URL     string
	Time    int64
	Score   int64
	Text    sql.NullString
	Summary sql.NullString
	Image   sql.NullString
}
