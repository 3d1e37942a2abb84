package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/news"
)

// PostgresWriter is the relational sink: one row per article_id, the
// latest write wins on every other column.
type PostgresWriter struct {
	db    *sql.DB
	table string
	log   *zap.Logger
}

func NewPostgresWriter(connectionString, table string, log *zap.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresWriter{db: db, table: table, log: log}, nil
}

func (w *PostgresWriter) Close() error {
	return w.db.Close()
}

// EnsureTable creates the articles table if it does not exist yet.
func (w *PostgresWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			article_id TEXT PRIMARY KEY,
			time       TIMESTAMPTZ,
			title      TEXT,
			content    TEXT,
			analysis   TEXT,
			error      TEXT
		)`, w.table)
	if _, err := w.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure table %s: %w", w.table, err)
	}
	return nil
}

// StoreArticle decodes one queue-B body and upserts its row. Errors
// surface so the broker scope rejects the delivery.
func (w *PostgresWriter) StoreArticle(ctx context.Context, body []byte) error {
	article, err := news.Decode(body)
	if err != nil {
		return err
	}
	return w.Store(ctx, article.ToRecord())
}

func (w *PostgresWriter) Store(ctx context.Context, rec news.Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (article_id, time, title, content, analysis, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (article_id) DO UPDATE SET
			time     = EXCLUDED.time,
			title    = EXCLUDED.title,
			content  = EXCLUDED.content,
			analysis = EXCLUDED.analysis,
			error    = EXCLUDED.error`, w.table)

	_, err := w.db.ExecContext(ctx, query,
		rec.ArticleID,
		parseTime(rec.Time),
		rec.Title,
		rec.Content,
		rec.Analysis,
		rec.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to store article %s: %w", rec.ArticleID, err)
	}
	w.log.Info("stored article row", zap.String("article_id", rec.ArticleID))
	return nil
}

// parseTime maps the message timestamp onto the timestamptz column;
// absent or malformed values become NULL rather than failing the row.
func parseTime(s string) any {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return t
}
