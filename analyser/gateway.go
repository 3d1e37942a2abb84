package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wayming/Automated-Trading-System/common/api"
	"github.com/wayming/Automated-Trading-System/discovery"
)

// The relay forwards to a slow external endpoint, so pushes get a
// generous budget.
const pushTimeout = 600 * time.Second

// GatewayPush forwards the raw analysis text to the external relay.
type GatewayPush struct {
	client api.AnalysisPushGatewayClient
	conn   *grpc.ClientConn
	log    *zap.Logger
}

func NewGatewayPush(addr string, log *zap.Logger) (*GatewayPush, error) {
	conn, err := discovery.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial gateway at %s: %w", addr, err)
	}
	log.Info("gateway push client ready", zap.String("addr", addr))
	return &GatewayPush{
		client: api.NewAnalysisPushGatewayClient(conn),
		conn:   conn,
		log:    log,
	}, nil
}

// Push is fire-and-forget: timeouts and transport errors are logged
// and swallowed because the article already reached queue B.
func (g *GatewayPush) Push(ctx context.Context, message string) {
	ctx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()

	start := time.Now()
	g.log.Info("pushing analysis to gateway")
	resp, err := g.client.Push(ctx, &api.PushRequest{Message: message})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded {
			g.log.Error("push request timed out", zap.Duration("after", time.Since(start)))
			return
		}
		g.log.Error("failed to push to gateway", zap.Error(err))
		return
	}
	g.log.Info("push response",
		zap.Int32("status_code", resp.GetStatusCode()),
		zap.String("response_text", resp.GetResponseText()),
	)
}

func (g *GatewayPush) Close() error {
	return g.conn.Close()
}
