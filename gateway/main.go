package main

import (
	"context"
	"net"
	"os"
	"os/signal"
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
	serviceName = "gateway"
	grpcAddr    = config.GetEnv("GATEWAY_GRPC_ADDR", ":50053")
	consulAddr  = config.GetEnv("CONSUL_ADDR", "")
)

func main() {
	log, err := logger.Init(serviceName, "output/gateway.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	endpoint, err := config.Require("HTTP_API_ENDPOINT")
	if err != nil {
		log.Fatal("missing relay target", zap.Error(err))
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
	api.RegisterAnalysisPushGatewayServer(grpcServer, NewRelayServer(endpoint, logger.Component("relay")))

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

	log.Info("gateway relay listening",
		zap.String("addr", grpcAddr),
		zap.String("endpoint", endpoint),
	)
	if err := grpcServer.Serve(l); err != nil {
		log.Fatal("failed to serve", zap.Error(err))
	}
}
