package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/wayming/Automated-Trading-System/common/api"
	"github.com/wayming/Automated-Trading-System/discovery"
)

// ExecutorProxy forwards trade orders to the remote TradeExecutor
// service.
type ExecutorProxy struct {
	client api.TradeExecutorClient
	conn   *grpc.ClientConn
	log    *zap.Logger
}

func NewExecutorProxy(addr string, log *zap.Logger) (*ExecutorProxy, error) {
	conn, err := discovery.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial executor at %s: %w", addr, err)
	}
	log.Info("trade executor proxy ready", zap.String("addr", addr))
	return &ExecutorProxy{
		client: api.NewTradeExecutorClient(conn),
		conn:   conn,
		log:    log,
	}, nil
}

func (p *ExecutorProxy) ExecuteTrade(ctx context.Context, symbol, trade string, amount float64) (*api.TradeResponse, error) {
	return p.client.ExecuteTrade(ctx, &api.TradeRequest{
		Symbol: symbol,
		Trade:  trade,
		Amount: amount,
	})
}

func (p *ExecutorProxy) Close() error {
	return p.conn.Close()
}
