package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/config"
	"github.com/wayming/Automated-Trading-System/common/embedding"
	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/tracing"
	"github.com/wayming/Automated-Trading-System/discovery"
	"github.com/wayming/Automated-Trading-System/discovery/consul"
)

var (
	serviceName = "mcpserver"
	mcpPort     = config.GetEnv("MCP_SERVER_PORT", "8000")
	redisAddr   = config.GetEnv("REDIS_ADDR", "")
	consulAddr  = config.GetEnv("CONSUL_ADDR", "")

	postgresHost = config.GetEnv("POSTGRES_HOST", "localhost")
	postgresPort = config.GetEnv("POSTGRES_PORT", "5432")
	postgresUser = config.GetEnv("POSTGRES_USER", "postgres")
	postgresPass = config.GetEnv("POSTGRES_PASSWORD", "postgres")
	postgresDB   = config.GetEnv("POSTGRES_DB", "articles")
	pgTable      = config.GetEnv("PG_TABLE", "articles")

	weaviateHost  = config.GetEnv("WEAVIATE_HOST", "localhost")
	weaviatePort  = config.GetEnv("WEAVIATE_HTTP_PORT", "8080")
	weaviateClass = config.GetEnv("WEAVIATE_CLASS_NAME", "articles")
)

func main() {
	log, err := logger.Init(serviceName, "output/mcpserver.log")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting mcp server")

	shutdownTracer, err := tracing.InitTracer(serviceName, log)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdownTracer()

	if consulAddr != "" {
		registry, err := consul.NewRegistry(consulAddr)
		if err != nil {
			log.Fatal("failed to connect to consul", zap.Error(err))
		}
		ctx := context.Background()
		instanceID := discovery.GenerateInstanceID(serviceName)
		if err := registry.Register(ctx, instanceID, serviceName, ":"+mcpPort); err != nil {
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

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPass, postgresHost, postgresPort, postgresDB)
	reader, err := NewAnalysisReader(connStr, pgTable, logger.Component("pg_reader"))
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer reader.Close()
	log.Info("connected to postgres", zap.String("database", postgresDB))

	similar, err := NewSimilarReader(weaviateHost, weaviatePort, weaviateClass, logger.Component("wv_reader"))
	if err != nil {
		log.Fatal("failed to create weaviate client", zap.Error(err))
	}
	log.Info("connected to weaviate",
		zap.String("host", weaviateHost),
		zap.String("http_port", weaviatePort),
	)

	var cache historyCache
	if redisAddr != "" {
		c, err := NewAnalysisCache(redisAddr)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer c.Close()
		cache = c
		log.Info("read cache enabled", zap.String("addr", redisAddr))
	}

	tools := NewToolServer(embedding.NewOpenAIEmbedder(), similar, reader, cache, logger.Component("tools"))
	httpServer := server.NewStreamableHTTPServer(tools.MCPServer())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("gracefully shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("mcp server listening", zap.String("port", mcpPort))
	if err := httpServer.Start(":" + mcpPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("failed to serve", zap.Error(err))
	}
	log.Info("shutdown complete")
}
