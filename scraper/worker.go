package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/handoff"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/news"
)

const fetchLimit = 5

// Worker owns the page fetcher for its lifetime: it logs in with a
// retry budget, then fetches on a fixed cadence until ctx is
// cancelled. Each new article is converted to an ArticleMessage and
// handed to the publisher; a full handoff queue blocks the worker,
// which is the backpressure path.
type Worker struct {
	fetcher PageFetcher
	out     *handoff.Queue[*news.ArticleMessage]
	met     *metrics.ScraperMetrics
	log     *zap.Logger

	loginBudget time.Duration
	loginWait   time.Duration
	interval    time.Duration
}

func NewWorker(fetcher PageFetcher, out *handoff.Queue[*news.ArticleMessage], met *metrics.ScraperMetrics, log *zap.Logger) *Worker {
	return &Worker{
		fetcher:     fetcher,
		out:         out,
		met:         met,
		log:         log,
		loginBudget: config.GetEnvSeconds("LOGIN_RETRY_TIMEOUT", 60*time.Second),
		loginWait:   5 * time.Second,
		interval:    config.GetEnvSeconds("SCRAPE_INTERVAL", 10*time.Second),
	}
}

func (w *Worker) Run(ctx context.Context) {
	defer w.fetcher.Close()

	if !w.loginWithRetry(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
		}
		w.scrape()
	}
}

// loginWithRetry keeps trying until login succeeds or the budget is
// spent. A spent budget ends the worker cleanly.
func (w *Worker) loginWithRetry(ctx context.Context) bool {
	giveUp := time.Now().Add(w.loginBudget)
	for {
		err := w.fetcher.Login()
		if err == nil {
			return true
		}
		w.log.Error("login failed, retrying", zap.Error(err))
		if time.Now().After(giveUp) {
			w.log.Error("login failed, giving up")
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(w.loginWait):
		}
	}
}

func (w *Worker) scrape() {
	articles, err := w.fetcher.FetchNews(fetchLimit)
	w.met.MarkRun()
	if err != nil {
		w.met.Errors.Inc()
		w.log.Error("failed to fetch news", zap.Error(err))
		return
	}
	for _, article := range articles {
		msg := news.NewArticleMessage(article.Title, article.Content)
		w.log.Info("queueing article", zap.String("title", msg.Title))
		w.out.Put(msg)
	}
}
