package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/api"
)

type recordedRequest struct {
	contentType string
	body        string
}

func relayTo(t *testing.T, status int, reply string) (*RelayServer, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		})
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(upstream.Close)
	return NewRelayServer(upstream.URL, zap.NewNop()), &requests
}

func TestRelayPostsJSONAsJSON(t *testing.T) {
	server, requests := relayTo(t, http.StatusOK, `{"ok":true}`)

	resp, err := server.Push(context.Background(), &api.PushRequest{Message: `{"score": "+65"}`})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "application/json", (*requests)[0].contentType)
	assert.Equal(t, `{"score": "+65"}`, (*requests)[0].body)
	assert.Equal(t, int32(200), resp.GetStatusCode())
	assert.Equal(t, `{"ok":true}`, resp.GetResponseText())
}

func TestRelayPostsPlainTextOtherwise(t *testing.T) {
	server, requests := relayTo(t, http.StatusOK, "accepted")

	resp, err := server.Push(context.Background(), &api.PushRequest{Message: "no structure today"})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "text/plain", (*requests)[0].contentType)
	assert.Equal(t, "no structure today", (*requests)[0].body)
	assert.Equal(t, int32(200), resp.GetStatusCode())
}

func TestRelayReflectsUpstreamStatus(t *testing.T) {
	server, _ := relayTo(t, http.StatusBadGateway, "upstream broken")

	resp, err := server.Push(context.Background(), &api.PushRequest{Message: "msg"})
	require.NoError(t, err)
	assert.Equal(t, int32(502), resp.GetStatusCode())
	assert.Equal(t, "upstream broken", resp.GetResponseText())
}

func TestRelayReportsTransportFailure(t *testing.T) {
	server := NewRelayServer("http://127.0.0.1:1", zap.NewNop())

	resp, err := server.Push(context.Background(), &api.PushRequest{Message: "msg"})
	require.NoError(t, err)
	assert.Equal(t, int32(500), resp.GetStatusCode())
	assert.NotEmpty(t, resp.GetResponseText())
}
