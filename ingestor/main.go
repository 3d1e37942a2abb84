package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/broker"
	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/embedding"
	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/common/tracing"
)

var (
	serviceName = "ingestor"
	metricsAddr = config.GetEnv("METRICS_ADDR", "")

	postgresHost = config.GetEnv("POSTGRES_HOST", "localhost")
	postgresPort = config.GetEnv("POSTGRES_PORT", "5432")
	postgresUser = config.GetEnv("POSTGRES_USER", "postgres")
	postgresPass = config.GetEnv("POSTGRES_PASSWORD", "postgres")
	postgresDB   = config.GetEnv("POSTGRES_DB", "articles")
	pgTable      = config.GetEnv("PG_TABLE", "articles")

	weaviateHost = config.GetEnv("WEAVIATE_HOST", "localhost")
	weaviatePort = config.GetEnv("WEAVIATE_HTTP_PORT", "8080")
	// The v4 client speaks HTTP only; the gRPC port stays configurable
	// for deployments that front weaviate with its grpc listener.
	weaviateGRPC  = config.GetEnv("WEAVIATE_GRPC_PORT", "50051")
	weaviateClass = config.GetEnv("WEAVIATE_CLASS_NAME", "articles")
)

func main() {
	log, err := logger.Init(serviceName, "output/ingestor.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting ingestor")

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	metrics.Serve(metricsAddr, log)
	met := metrics.NewStageMetrics(serviceName)

	ctx := context.Background()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPass, postgresHost, postgresPort, postgresDB)
	pg, err := NewPostgresWriter(connStr, pgTable, logger.Component("pg_writer"))
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.EnsureTable(ctx); err != nil {
		log.Fatal("failed to ensure table", zap.Error(err))
	}
	log.Info("connected to postgres", zap.String("database", postgresDB))

	wv, err := NewWeaviateWriter(weaviateHost, weaviatePort, weaviateClass, embedding.NewOpenAIEmbedder(), logger.Component("wv_writer"))
	if err != nil {
		log.Fatal("failed to create weaviate client", zap.Error(err))
	}
	if err := wv.EnsureClass(ctx); err != nil {
		log.Fatal("failed to ensure vector class", zap.Error(err))
	}
	log.Info("connected to weaviate",
		zap.String("host", weaviateHost),
		zap.String("http_port", weaviatePort),
		zap.String("grpc_port", weaviateGRPC),
	)

	mq, err := broker.Connect(broker.ConfigFromEnv(), log)
	if err != nil {
		log.Fatal("failed to connect to broker", zap.Error(err))
	}
	defer mq.Shutdown()
	if err := mq.DeclareQueue(broker.QueueProcessedArticles); err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	// Both sinks run per delivery; the message is acked only when both
	// succeeded, and upsert/duplicate tolerance keeps redelivery safe.
	cs := mq.NewConsumer(broker.QueueProcessedArticles).
		WithHandler(countHandler(met, pg.StoreArticle)).
		WithHandler(countHandler(met, wv.StoreArticle))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("gracefully shutting down", zap.String("signal", sig.String()))
		cs.Stop()
	}()

	log.Info("consuming", zap.String("queue", broker.QueueProcessedArticles))
	if err := cs.Consume(context.Background()); err != nil {
		log.Error("consumer stopped with error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// countHandler wraps a sink handler with the stage counters.
func countHandler(met *metrics.StageMetrics, h broker.Handler) broker.Handler {
	return func(ctx context.Context, body []byte) error {
		start := time.Now()
		if err := h(ctx, body); err != nil {
			met.Failed.Inc()
			return err
		}
		met.Processed.Inc()
		met.Duration.Observe(time.Since(start).Seconds())
		return nil
	}
}
