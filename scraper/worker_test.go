package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/handoff"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/news"
)

// Shared across tests; prometheus collectors register globally.
var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.ScraperMetrics
)

func scraperMetrics() *metrics.ScraperMetrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewScraperMetrics()
	})
	return testMetrics
}

type fakeFetcher struct {
	mu         sync.Mutex
	loginFails int
	loginCalls int
	fetchErr   error
	articles   []Article
	fetchCalls int
	closed     bool

	// When set, the first FetchNews closes fetchStarted and then blocks
	// until fetchGate closes, simulating a slow browser call.
	fetchStarted chan struct{}
	fetchGate    chan struct{}
}

func (f *fakeFetcher) Login() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	if f.loginFails > 0 {
		f.loginFails--
		return errors.New("login rejected")
	}
	return nil
}

func (f *fakeFetcher) FetchNews(limit int) ([]Article, error) {
	f.mu.Lock()
	f.fetchCalls++
	firstCall := f.fetchCalls == 1
	started, gate := f.fetchStarted, f.fetchGate
	fetchErr := f.fetchErr
	articles := f.articles
	f.mu.Unlock()

	if firstCall && started != nil {
		close(started)
	}
	if firstCall && gate != nil {
		<-gate
	}

	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(articles) > limit {
		return articles[:limit], nil
	}
	return articles, nil
}

func (f *fakeFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func newTestWorker(f PageFetcher, q *handoff.Queue[*news.ArticleMessage]) *Worker {
	w := NewWorker(f, q, scraperMetrics(), zap.NewNop())
	w.loginWait = time.Millisecond
	w.interval = time.Millisecond
	return w
}

func TestWorkerRetriesLoginUntilSuccess(t *testing.T) {
	fetcher := &fakeFetcher{loginFails: 2, articles: []Article{{Title: "t", Content: "c"}}}
	queue := handoff.New[*news.ArticleMessage](4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		newTestWorker(fetcher, queue).Run(ctx)
	}()

	msg, ok := queue.Get(time.Second)
	require.True(t, ok, "expected an article after login succeeded")
	assert.Equal(t, "t", msg.Title)

	cancel()
	<-done
	assert.Equal(t, 3, fetcher.loginCalls)
	assert.True(t, fetcher.closed)
}

func TestWorkerGivesUpWhenLoginBudgetSpent(t *testing.T) {
	fetcher := &fakeFetcher{loginFails: 1000}
	queue := handoff.New[*news.ArticleMessage](4)

	w := newTestWorker(fetcher, queue)
	w.loginBudget = 5 * time.Millisecond

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not give up on login")
	}
	assert.True(t, fetcher.closed)
	assert.Zero(t, fetcher.fetchCalls)
}

func TestWorkerQueuesFetchedArticles(t *testing.T) {
	fetcher := &fakeFetcher{articles: []Article{
		{Title: "first", Content: "body one"},
		{Title: "second", Content: "body two"},
	}}
	queue := handoff.New[*news.ArticleMessage](4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		newTestWorker(fetcher, queue).Run(ctx)
	}()

	first, ok := queue.Get(time.Second)
	require.True(t, ok)
	second, ok := queue.Get(time.Second)
	require.True(t, ok)

	assert.Equal(t, "first", first.Title)
	assert.Equal(t, "body one", first.Content)
	assert.NotEmpty(t, first.MessageID)
	assert.Equal(t, "second", second.Title)
	assert.NotEqual(t, first.MessageID, second.MessageID)

	cancel()
	<-done
}

// Replays the supervisor's shutdown order: a scrape in flight when the
// stop signal arrives still enqueues its articles, and they reach the
// broker before the publisher stops and the queue drains.
func TestShutdownDrainsInFlightScrape(t *testing.T) {
	fetcher := &fakeFetcher{
		articles:     []Article{{Title: "late", Content: "body"}},
		fetchStarted: make(chan struct{}),
		fetchGate:    make(chan struct{}),
	}
	queue := handoff.New[*news.ArticleMessage](4)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		newTestWorker(fetcher, queue).Run(workerCtx)
	}()

	mq := &fakeBroker{}
	stopPublisher := make(chan struct{})
	publisherDone := make(chan error, 1)
	go func() {
		publisherDone <- newTestPublisher(mq, queue).Run(context.Background(), stopPublisher)
	}()

	// The stop signal lands mid-scrape; the fetch completes afterwards.
	<-fetcher.fetchStarted
	stopWorker()
	close(fetcher.fetchGate)

	select {
	case <-workerDone:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	close(stopPublisher)
	require.NoError(t, <-publisherDone)

	joined := make(chan struct{})
	go func() {
		queue.Join()
		close(joined)
	}()
	select {
	case <-joined:
	case <-time.After(time.Second):
		t.Fatal("queue did not drain the article enqueued after the stop signal")
	}

	bodies := mq.published()
	require.Len(t, bodies, 1)
	msg, err := news.Decode(bodies[0])
	require.NoError(t, err)
	assert.Equal(t, "late", msg.Title)
}

func TestWorkerContinuesAfterFetchError(t *testing.T) {
	fetcher := &fakeFetcher{fetchErr: errors.New("page did not load")}
	queue := handoff.New[*news.ArticleMessage](4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		newTestWorker(fetcher, queue).Run(ctx)
	}()

	assert.Eventually(t, func() bool {
		fetcher.mu.Lock()
		defer fetcher.mu.Unlock()
		return fetcher.fetchCalls >= 3
	}, time.Second, time.Millisecond, "worker should keep scraping after errors")

	cancel()
	<-done
	assert.True(t, queue.Empty())
}
