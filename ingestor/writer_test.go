package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/news"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	inputs []string
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.inputs = append(f.inputs, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func enrichedBody(t *testing.T, id, content, analysis string) []byte {
	t.Helper()
	msg := &news.ArticleMessage{
		MessageID: id,
		Time:      "2025-09-22T12:00:00Z",
		Title:     "Test Title",
		Content:   content,
	}
	if analysis != "" {
		msg.ResponseStruct = json.RawMessage(analysis)
	}
	body, err := msg.Encode()
	require.NoError(t, err)
	return body
}

func TestWeaviateWriterSkipsEmptyContent(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	w := &WeaviateWriter{class: "articles", embedder: embedder, log: zap.NewNop()}

	// Empty content is skipped before any embedding or insert happens.
	err := w.StoreArticle(context.Background(), enrichedBody(t, "id-1", "", `{"ok":true}`))
	require.NoError(t, err)
	assert.Empty(t, embedder.inputs)

	// Whitespace-only content trims to empty and is skipped too.
	err = w.StoreArticle(context.Background(), enrichedBody(t, "id-2", "   \n\t ", ""))
	require.NoError(t, err)
	assert.Empty(t, embedder.inputs)
}

func TestWeaviateWriterRejectsBadBody(t *testing.T) {
	w := &WeaviateWriter{class: "articles", embedder: &fakeEmbedder{}, log: zap.NewNop()}

	err := w.StoreArticle(context.Background(), []byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, news.ErrDecode)
}

func TestWeaviateWriterPropagatesEmbedError(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("embedding server down")}
	w := &WeaviateWriter{class: "articles", embedder: embedder, log: zap.NewNop()}

	err := w.StoreArticle(context.Background(), enrichedBody(t, "id-3", "some content", ""))
	require.Error(t, err)
	assert.Equal(t, []string{"some content"}, embedder.inputs)
}

func TestParseTime(t *testing.T) {
	ts := parseTime("2025-09-22T12:00:00Z")
	require.IsType(t, time.Time{}, ts)
	assert.Equal(t, 2025, ts.(time.Time).Year())

	assert.Nil(t, parseTime(""))
	assert.Nil(t, parseTime("not a timestamp"))
	assert.Nil(t, parseTime("22/09/2025"))
}

func TestRecordMappingForUpsert(t *testing.T) {
	body := enrichedBody(t, "id-9", "  content  ", `{"stock_code":"TSLA"}`)
	msg, err := news.Decode(body)
	require.NoError(t, err)

	rec := msg.ToRecord()
	assert.Equal(t, "id-9", rec.ArticleID)
	assert.Equal(t, "content", rec.Content)
	assert.Equal(t, `{"stock_code":"TSLA"}`, rec.Analysis)
	assert.Empty(t, rec.Error)
}
