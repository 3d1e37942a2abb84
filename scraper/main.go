package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/broker"
	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/handoff"
	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/common/tracing"
	"github.com/wayming/Automated-Trading-System/news"
)

const handoffCapacity = 64

var (
	serviceName = "scraper"
	hubURL      = config.GetEnv("SELENIUM_HUB_URL", "http://selenium-hub:4444/wd/hub")
	metricsAddr = config.GetEnv("METRICS_ADDR", "")
)

func main() {
	log, err := logger.Init(serviceName, "output/scraper.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting scraper")

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	user, err := config.Require("TRADE_VIEW_USER")
	if err != nil {
		log.Fatal("missing credentials", zap.Error(err))
	}
	pass, err := config.Require("TRADE_VIEW_PASS")
	if err != nil {
		log.Fatal("missing credentials", zap.Error(err))
	}

	metrics.Serve(metricsAddr, log)
	met := metrics.NewScraperMetrics()

	fetcher, err := NewTradingView(hubURL, user, pass, logger.Component("tradingview"))
	if err != nil {
		log.Fatal("failed to start browser session", zap.Error(err))
	}

	mq, err := broker.Connect(broker.ConfigFromEnv(), log)
	if err != nil {
		log.Fatal("failed to connect to broker", zap.Error(err))
	}
	if err := mq.DeclareQueue(broker.QueueTVArticles); err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	queue := handoff.New[*news.ArticleMessage](handoffCapacity)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	worker := NewWorker(fetcher, queue, met, logger.Component("worker"))
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Run(workerCtx)
	}()

	stopPublisher := make(chan struct{})
	publisher := NewPublisher(mq, broker.QueueTVArticles, queue, logger.Component("publisher"))
	publisherDone := make(chan error, 1)
	go func() {
		publisherDone <- publisher.Run(context.Background(), stopPublisher)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// The worker stops before the publisher: a scrape in flight at
	// signal time still enqueues its articles, and the publisher must
	// outlive the producer or those late messages are never drained.
	var pubErr error
	var workerStopped bool
	select {
	case sig := <-sigCh:
		log.Info("gracefully shutting down", zap.String("signal", sig.String()))
		stopWorker()
		workerStopped = awaitWorker(workerDone, log)
		close(stopPublisher)
		pubErr = <-publisherDone
	case pubErr = <-publisherDone:
		log.Error("publisher exited, shutting down", zap.Error(pubErr))
		stopWorker()
		workerStopped = awaitWorker(workerDone, log)
	}

	if pubErr == nil && workerStopped {
		log.Info("shutting down, waiting for queue to drain")
		queue.Join()
	}

	log.Info("shutting down broker connection")
	if err := mq.Shutdown(); err != nil {
		log.Error("broker shutdown failed", zap.Error(err))
	}
}

// awaitWorker gives the fetch goroutine a bounded window to finish its
// in-flight browser call; a stuck scrape must not wedge shutdown.
func awaitWorker(done <-chan struct{}, log *zap.Logger) bool {
	log.Info("shutting down scraper worker")
	select {
	case <-done:
		return true
	case <-time.After(5 * time.Second):
		log.Warn("scraper worker did not stop in time")
		return false
	}
}
