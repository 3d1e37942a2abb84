package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"go.uber.org/zap"
)

// SimilarReader runs near-vector searches against the article class
// the ingestor populates.
type SimilarReader struct {
	client *weaviate.Client
	class  string
	log    *zap.Logger
}

func NewSimilarReader(host, port, class string, log *zap.Logger) (*SimilarReader, error) {
	client, err := weaviate.NewClient(weaviate.Config{
		Host:   fmt.Sprintf("%s:%s", host, port),
		Scheme: "http",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %w", err)
	}
	return &SimilarReader{client: client, class: class, log: log}, nil
}

// NearVector returns the properties of the closest stored articles.
func (r *SimilarReader) NearVector(ctx context.Context, vector []float32, limit int) ([]map[string]any, error) {
	nearVector := r.client.GraphQL().NearVectorArgBuilder().WithVector(vector)

	resp, err := r.client.GraphQL().Get().
		WithClassName(r.class).
		WithFields(graphql.Field{Name: "article_id"}, graphql.Field{Name: "content"}).
		WithNearVector(nearVector).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("near-vector query failed: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("near-vector query failed: %s", resp.Errors[0].Message)
	}

	get, ok := resp.Data["Get"].(map[string]any)
	if !ok {
		return []map[string]any{}, nil
	}
	// GraphQL capitalizes class names.
	objects, _ := get[strings.ToUpper(r.class[:1])+r.class[1:]].([]any)

	out := make([]map[string]any, 0, len(objects))
	for _, obj := range objects {
		if props, ok := obj.(map[string]any); ok {
			out = append(out, props)
		}
	}
	return out, nil
}
