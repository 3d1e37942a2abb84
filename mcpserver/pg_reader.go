package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// AnalysisReader answers historical-analysis lookups from the article
// table the ingestor maintains.
type AnalysisReader struct {
	db    *sql.DB
	table string
	log   *zap.Logger
}

func NewAnalysisReader(connStr, table string, log *zap.Logger) (*AnalysisReader, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return &AnalysisReader{db: db, table: table, log: log}, nil
}

func (r *AnalysisReader) Close() error {
	return r.db.Close()
}

// HistoricalAnalysis returns the stored row for an article id, or an
// empty list when none exists. article_id is the primary key, so the
// result never holds more than one row.
func (r *AnalysisReader) HistoricalAnalysis(ctx context.Context, articleID string) ([]map[string]any, error) {
	query := fmt.Sprintf(
		`SELECT article_id, time, title, content, analysis, error FROM %s WHERE article_id = $1`,
		r.table,
	)

	var (
		id       string
		ts       sql.NullTime
		title    sql.NullString
		content  sql.NullString
		analysis sql.NullString
		errText  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, articleID).
		Scan(&id, &ts, &title, &content, &analysis, &errText)
	if errors.Is(err, sql.ErrNoRows) {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article %s: %w", articleID, err)
	}

	row := map[string]any{
		"article_id": id,
		"time":       "",
		"title":      title.String,
		"content":    content.String,
		"analysis":   analysis.String,
		"error":      errText.String,
	}
	if ts.Valid {
		row["time"] = ts.Time.Format(time.RFC3339)
	}
	return []map[string]any{row}, nil
}
