package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/broker"
	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/metrics"
	"github.com/wayming/Automated-Trading-System/common/tracing"
	"github.com/wayming/Automated-Trading-System/discovery"
	"github.com/wayming/Automated-Trading-System/discovery/consul"
)

var (
	serviceName  = "analyser"
	consulAddr   = config.GetEnv("CONSUL_ADDR", "")
	gatewayAddr  = config.GetEnv("AWS_GATEWAY_ENDPOINT", "")
	executorAddr = config.GetEnv("EXECUTOR_ENDPOINT", "mock_executor:50051")
	metricsAddr  = config.GetEnv("METRICS_ADDR", "")
)

func main() {
	log, err := logger.Init(serviceName, "output/analyser.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting analyser")

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	provider, err := NewDeepSeekProvider()
	if err != nil {
		log.Fatal("provider configuration invalid", zap.Error(err))
	}

	metrics.Serve(metricsAddr, log)
	met := metrics.NewStageMetrics(serviceName)

	var registry discovery.Registry
	if consulAddr != "" {
		registry, err = consul.NewRegistry(consulAddr)
		if err != nil {
			log.Fatal("failed to connect to consul", zap.Error(err))
		}
	}

	analyser := NewArticleAnalyser(provider, logger.Component("analyser"))

	executor, err := NewExecutorProxy(resolve(registry, "executor", executorAddr), logger.Component("executor"))
	if err != nil {
		log.Fatal("failed to set up executor proxy", zap.Error(err))
	}
	defer executor.Close()
	policy := NewTradePolicy(executor, logger.Component("trade_policy"))

	var gateway gatewayPusher
	if addr := resolve(registry, "gateway", gatewayAddr); addr != "" {
		g, err := NewGatewayPush(addr, logger.Component("gateway"))
		if err != nil {
			log.Fatal("failed to set up gateway push", zap.Error(err))
		}
		defer g.Close()
		gateway = g
	} else {
		log.Info("no gateway endpoint configured, external push disabled")
	}

	mq, err := broker.Connect(broker.ConfigFromEnv(), log)
	if err != nil {
		log.Fatal("failed to connect to broker", zap.Error(err))
	}
	defer mq.Shutdown()
	if err := mq.DeclareQueue(broker.QueueTVArticles); err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}
	if err := mq.DeclareQueue(broker.QueueProcessedArticles); err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	consumer := NewConsumer(analyser, policy, mq, gateway, met, logger.Component("consumer"))
	cs := mq.NewConsumer(broker.QueueTVArticles).WithHandler(consumer.Handle)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("gracefully shutting down", zap.String("signal", sig.String()))
		cs.Stop()
	}()

	log.Info("consuming", zap.String("queue", broker.QueueTVArticles))
	if err := cs.Consume(context.Background()); err != nil {
		log.Error("consumer stopped with error", zap.Error(err))
	}
	log.Info("shutdown complete")
}

// resolve prefers a healthy registry instance and falls back to the
// configured endpoint.
func resolve(registry discovery.Registry, serviceName, fallback string) string {
	if registry == nil {
		return fallback
	}
	addrs, err := registry.Discover(context.Background(), serviceName)
	if err != nil || len(addrs) == 0 {
		return fallback
	}
	return addrs[0]
}
