package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/api"
)

// RelayServer implements the AnalysisPushGateway service: each pushed
// message is forwarded as a POST to the configured HTTP endpoint. The
// body goes out as application/json when the message parses as JSON,
// as text/plain otherwise.
type RelayServer struct {
	api.UnimplementedAnalysisPushGatewayServer

	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewRelayServer(endpoint string, log *zap.Logger) *RelayServer {
	return &RelayServer{
		endpoint: endpoint,
		client:   http.DefaultClient,
		log:      log,
	}
}

func (s *RelayServer) Push(ctx context.Context, req *api.PushRequest) (*api.PushResponse, error) {
	message := req.GetMessage()
	s.log.Info("relaying push", zap.Int("bytes", len(message)))

	contentType := "text/plain"
	if json.Valid([]byte(message)) {
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBufferString(message))
	if err != nil {
		return &api.PushResponse{StatusCode: 500, ResponseText: err.Error()}, nil
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.Error("upstream request failed", zap.Error(err))
		return &api.PushResponse{StatusCode: 500, ResponseText: err.Error()}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &api.PushResponse{StatusCode: 500, ResponseText: fmt.Sprintf("failed to read upstream response: %v", err)}, nil
	}

	s.log.Info("relay done",
		zap.String("content_type", contentType),
		zap.Int("status_code", resp.StatusCode),
	)
	return &api.PushResponse{
		StatusCode:   int32(resp.StatusCode),
		ResponseText: string(body),
	}, nil
}
