package main

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEmbedder struct {
	vector []float32
	err    error
	inputs []string
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	s.inputs = append(s.inputs, text)
	if s.err != nil {
		return nil, s.err
	}
	return s.vector, nil
}

type fakeSimilar struct {
	items   []map[string]any
	err     error
	vectors [][]float32
	limits  []int
}

func (f *fakeSimilar) NearVector(ctx context.Context, vector []float32, limit int) ([]map[string]any, error) {
	f.vectors = append(f.vectors, vector)
	f.limits = append(f.limits, limit)
	return f.items, f.err
}

type fakeHistory struct {
	rows  map[string][]map[string]any
	err   error
	calls []string
}

func (f *fakeHistory) HistoricalAnalysis(ctx context.Context, articleID string) ([]map[string]any, error) {
	f.calls = append(f.calls, articleID)
	if f.err != nil {
		return nil, f.err
	}
	if rows, ok := f.rows[articleID]; ok {
		return rows, nil
	}
	return []map[string]any{}, nil
}

type fakeCache struct {
	store  map[string][]map[string]any
	getErr error
	sets   []string
}

func (f *fakeCache) Get(ctx context.Context, articleID string) ([]map[string]any, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store[articleID], nil
}

func (f *fakeCache) Set(ctx context.Context, articleID string, rows []map[string]any) error {
	if f.store == nil {
		f.store = make(map[string][]map[string]any)
	}
	f.store[articleID] = rows
	f.sets = append(f.sets, articleID)
	return nil
}

func TestSimilarArticlesBlankInputSkipsStores(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	store := &fakeSimilar{}
	s := NewToolServer(embedder, store, &fakeHistory{}, nil, zap.NewNop())

	for _, input := range []string{"", "   ", "\n\t "} {
		items, err := s.SimilarArticles(context.Background(), input)
		require.NoError(t, err)
		assert.Empty(t, items)
	}
	assert.Empty(t, embedder.inputs)
	assert.Empty(t, store.vectors)
}

func TestSimilarArticlesEmbedsAndQueries(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1, 0.2, 0.3}}
	store := &fakeSimilar{items: []map[string]any{
		{"article_id": "a1", "content": "tesla earnings"},
		{"article_id": "a2", "content": "ev demand"},
	}}
	s := NewToolServer(embedder, store, &fakeHistory{}, nil, zap.NewNop())

	items, err := s.SimilarArticles(context.Background(), "tesla beats estimates")
	require.NoError(t, err)

	assert.Equal(t, []string{"tesla beats estimates"}, embedder.inputs)
	require.Len(t, store.vectors, 1)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, store.vectors[0])
	assert.Equal(t, []int{similarLimit}, store.limits)
	assert.Equal(t, store.items, items)
}

func TestSimilarArticlesPropagatesEmbedError(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("embedding server down")}
	store := &fakeSimilar{}
	s := NewToolServer(embedder, store, &fakeHistory{}, nil, zap.NewNop())

	_, err := s.SimilarArticles(context.Background(), "some content")
	require.Error(t, err)
	assert.Empty(t, store.vectors)
}

func TestHistoricalAnalysisByID(t *testing.T) {
	history := &fakeHistory{rows: map[string][]map[string]any{
		"a1": {{"article_id": "a1", "analysis": `{"stock_code":"TSLA"}`}},
	}}
	s := NewToolServer(&stubEmbedder{}, &fakeSimilar{}, history, nil, zap.NewNop())

	items, err := s.HistoricalAnalysis(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0]["article_id"])

	items, err = s.HistoricalAnalysis(context.Background(), "a2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoricalAnalysisCacheAside(t *testing.T) {
	history := &fakeHistory{rows: map[string][]map[string]any{
		"a1": {{"article_id": "a1"}},
	}}
	cache := &fakeCache{}
	s := NewToolServer(&stubEmbedder{}, &fakeSimilar{}, history, cache, zap.NewNop())

	// Miss populates the cache.
	items, err := s.HistoricalAnalysis(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"a1"}, cache.sets)

	// Second read is served from the cache.
	_, err = s.HistoricalAnalysis(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, history.calls)
}

func TestHistoricalAnalysisSurvivesCacheFailure(t *testing.T) {
	history := &fakeHistory{rows: map[string][]map[string]any{
		"a1": {{"article_id": "a1"}},
	}}
	cache := &fakeCache{getErr: errors.New("redis down")}
	s := NewToolServer(&stubEmbedder{}, &fakeSimilar{}, history, cache, zap.NewNop())

	items, err := s.HistoricalAnalysis(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"a1"}, history.calls)
}

func TestSimilarToolHandlerReturnsItemsEnvelope(t *testing.T) {
	s := NewToolServer(&stubEmbedder{}, &fakeSimilar{}, &fakeHistory{}, nil, zap.NewNop())

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_similar_articles"
	req.Params.Arguments = map[string]any{"article_content": "   "}

	result, err := s.handleSimilarArticles(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload, ok := result.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []map[string]any{}, payload["items"])
}

func TestSimilarToolHandlerRequiresArgument(t *testing.T) {
	s := NewToolServer(&stubEmbedder{}, &fakeSimilar{}, &fakeHistory{}, nil, zap.NewNop())

	req := mcp.CallToolRequest{}
	req.Params.Name = "get_similar_articles"
	req.Params.Arguments = map[string]any{}

	result, err := s.handleSimilarArticles(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
