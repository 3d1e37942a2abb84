package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/wayming/Automated-Trading-System/common/api"
	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/tracing"
	"github.com/wayming/Automated-Trading-System/discovery"
	"github.com/wayming/Automated-Trading-System/discovery/consul"
)

var (
	serviceName = "executor"
	grpcAddr    = config.GetEnv("EXECUTOR_GRPC_ADDR", ":50051")
	consulAddr  = config.GetEnv("CONSUL_ADDR", "")
	initialCash = config.GetEnv("EXECUTOR_INITIAL_CASH", "100000")
)

func main() {
	log, err := logger.Init(serviceName, "output/mockexecutor.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	cash, err := strconv.ParseFloat(initialCash, 64)
	if err != nil {
		log.Fatal("invalid EXECUTOR_INITIAL_CASH", zap.String("value", initialCash))
	}

	if consulAddr != "" {
		registry, err := consul.NewRegistry(consulAddr)
		if err != nil {
			log.Fatal("failed to connect to consul", zap.Error(err))
		}
		ctx := context.Background()
		instanceID := discovery.GenerateInstanceID(serviceName)
		if err := registry.Register(ctx, instanceID, serviceName, grpcAddr); err != nil {
			log.Fatal("failed to register service", zap.Error(err))
		}
		defer registry.Deregister(ctx, instanceID, serviceName)
		go func() {
			for {
				if err := registry.HealthCheck(instanceID, serviceName); err != nil {
					log.Error("failed to health check", zap.Error(err))
				}
				time.Sleep(time.Second)
			}
		}()
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	api.RegisterTradeExecutorServer(grpcServer, NewTradingEngine(cash, logger.Component("engine")))

	l, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("gracefully shutting down", zap.String("signal", sig.String()))
		grpcServer.GracefulStop()
	}()

	log.Info("mock trade executor listening",
		zap.String("addr", grpcAddr),
		zap.Float64("initial_cash", cash),
	)
	if err := grpcServer.Serve(l); err != nil {
		log.Fatal("failed to serve", zap.Error(err))
	}
}
