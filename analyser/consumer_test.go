package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/news"
)

// Registered once; prometheus collectors are global.
var stageMetrics = metrics.NewStageMetrics("analyser")

type fakeAnalyser struct {
	structured json.RawMessage
	raw        string
	err        error
	contents   []string
}

func (f *fakeAnalyser) Analyse(ctx context.Context, content string) (json.RawMessage, string, error) {
	f.contents = append(f.contents, content)
	return f.structured, f.raw, f.err
}

type fakePublisher struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, routingKey)
	f.bodies = append(f.bodies, body)
	return nil
}

type fakeGateway struct {
	messages []string
}

func (f *fakeGateway) Push(ctx context.Context, message string) {
	f.messages = append(f.messages, message)
}

func newTestConsumer(a newsAnalyser, mq messagePublisher, gw gatewayPusher) *Consumer {
	return &Consumer{
		analyser: a,
		policy:   NewTradePolicy(&fakeExecutor{}, zap.NewNop()),
		mq:       mq,
		gateway:  gw,
		met:      stageMetrics,
		log:      zap.NewNop(),
	}
}

func encodedArticle(t *testing.T, title, content string) []byte {
	t.Helper()
	body, err := news.NewArticleMessage(title, content).Encode()
	require.NoError(t, err)
	return body
}

func TestConsumerPublishesEnrichedMessage(t *testing.T) {
	analyser := &fakeAnalyser{
		structured: analysisWith("TSLA", "+65"),
		raw:        "full response",
	}
	mq := &fakePublisher{}
	gw := &fakeGateway{}
	c := newTestConsumer(analyser, mq, gw)

	err := c.Handle(context.Background(), encodedArticle(t, "title", "body text"))
	require.NoError(t, err)

	assert.Equal(t, []string{"body text"}, analyser.contents)

	require.Len(t, mq.bodies, 1)
	assert.Equal(t, []string{"processed_articles"}, mq.keys)
	enriched, err := news.Decode(mq.bodies[0])
	require.NoError(t, err)
	assert.Equal(t, "title", enriched.Title)
	assert.JSONEq(t, string(analyser.structured), string(enriched.ResponseStruct))
	assert.Equal(t, "full response", enriched.ResponseRaw)

	assert.Equal(t, []string{"full response"}, gw.messages)
}

func TestConsumerSkipsQueueBWithoutStructuredResult(t *testing.T) {
	analyser := &fakeAnalyser{raw: "unstructured reply"}
	mq := &fakePublisher{}
	gw := &fakeGateway{}
	c := newTestConsumer(analyser, mq, gw)

	err := c.Handle(context.Background(), encodedArticle(t, "t", "c"))
	require.NoError(t, err)

	assert.Empty(t, mq.bodies)
	// The gateway push still happens for raw-only results.
	assert.Equal(t, []string{"unstructured reply"}, gw.messages)
}

func TestConsumerPublishRawOptIn(t *testing.T) {
	analyser := &fakeAnalyser{raw: "unstructured reply"}
	mq := &fakePublisher{}
	c := newTestConsumer(analyser, mq, nil)
	c.publishRaw = true

	err := c.Handle(context.Background(), encodedArticle(t, "t", "c"))
	require.NoError(t, err)

	require.Len(t, mq.bodies, 1)
	enriched, err := news.Decode(mq.bodies[0])
	require.NoError(t, err)
	assert.Empty(t, enriched.ResponseStruct)
	assert.Equal(t, "unstructured reply", enriched.ResponseRaw)
}

func TestConsumerRejectsUndecodableBody(t *testing.T) {
	c := newTestConsumer(&fakeAnalyser{}, &fakePublisher{}, nil)

	err := c.Handle(context.Background(), []byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, news.ErrDecode)
}

func TestConsumerPropagatesAnalysisError(t *testing.T) {
	analyser := &fakeAnalyser{err: errors.New("llm down")}
	mq := &fakePublisher{}
	c := newTestConsumer(analyser, mq, nil)

	err := c.Handle(context.Background(), encodedArticle(t, "t", "c"))
	require.Error(t, err)
	assert.Empty(t, mq.bodies)
}

func TestConsumerPropagatesPublishError(t *testing.T) {
	analyser := &fakeAnalyser{structured: analysisWith("TSLA", "+65"), raw: "r"}
	mq := &fakePublisher{err: errors.New("broker gone")}
	gw := &fakeGateway{}
	c := newTestConsumer(analyser, mq, gw)

	err := c.Handle(context.Background(), encodedArticle(t, "t", "c"))
	require.Error(t, err)
	// No push for a message that failed to persist.
	assert.Empty(t, gw.messages)
}
