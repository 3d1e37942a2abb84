package main

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate/entities/models"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/embedding"
	"github.com/wayming/Automated-Trading-System/news"
)

// WeaviateWriter is the vector sink: each article is stored with its
// content embedding. Duplicate article_ids are tolerated; the reader
// side dedupes on the property.
type WeaviateWriter struct {
	client   *weaviate.Client
	class    string
	embedder embedding.Embedder
	log      *zap.Logger
}

func NewWeaviateWriter(host, port, class string, embedder embedding.Embedder, log *zap.Logger) (*WeaviateWriter, error) {
	client, err := weaviate.NewClient(weaviate.Config{
		Host:   fmt.Sprintf("%s:%s", host, port),
		Scheme: "http",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}
	return &WeaviateWriter{client: client, class: class, embedder: embedder, log: log}, nil
}

// EnsureClass creates the article class when absent. Vectors are
// provided by the ingestor, so the class carries no vectorizer.
func (w *WeaviateWriter) EnsureClass(ctx context.Context) error {
	exists, err := w.client.Schema().ClassExistenceChecker().WithClassName(w.class).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check class %s: %w", w.class, err)
	}
	if exists {
		return nil
	}
	class := &models.Class{
		Class:      w.class,
		Vectorizer: "none",
		Properties: []*models.Property{
			{Name: "article_id", DataType: []string{"text"}},
			{Name: "content", DataType: []string{"text"}},
		},
	}
	if err := w.client.Schema().ClassCreator().WithClass(class).Do(ctx); err != nil {
		return fmt.Errorf("failed to create class %s: %w", w.class, err)
	}
	w.log.Info("created vector class", zap.String("class", w.class))
	return nil
}

// StoreArticle decodes one queue-B body, embeds the content and
// inserts the object. Articles without id or content are skipped.
func (w *WeaviateWriter) StoreArticle(ctx context.Context, body []byte) error {
	article, err := news.Decode(body)
	if err != nil {
		return err
	}
	rec := article.ToRecord()
	if rec.ArticleID == "" || rec.Content == "" {
		w.log.Info("skipping article without id or content",
			zap.String("article_id", rec.ArticleID))
		return nil
	}

	vector, err := w.embedder.Embed(ctx, rec.Content)
	if err != nil {
		return fmt.Errorf("failed to embed article %s: %w", rec.ArticleID, err)
	}

	_, err = w.client.Data().Creator().
		WithClassName(w.class).
		WithProperties(map[string]any{
			"article_id": rec.ArticleID,
			"content":    rec.Content,
		}).
		WithVector(vector).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert article %s: %w", rec.ArticleID, err)
	}
	w.log.Info("stored article vector", zap.String("article_id", rec.ArticleID))
	return nil
}
