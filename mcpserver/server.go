package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/embedding"
)

const similarLimit = 5

// Every tool returns the same envelope: an items array of objects.
var itemsSchema = json.RawMessage(
	`{"type":"object","properties":{"items":{"type":"array","items":{"type":"object"}}},"required":["items"]}`,
)

type similarStore interface {
	NearVector(ctx context.Context, vector []float32, limit int) ([]map[string]any, error)
}

type historyStore interface {
	HistoricalAnalysis(ctx context.Context, articleID string) ([]map[string]any, error)
}

type historyCache interface {
	Get(ctx context.Context, articleID string) ([]map[string]any, error)
	Set(ctx context.Context, articleID string, rows []map[string]any) error
}

// ToolServer exposes the article read tools over MCP. The cache is
// optional and invisible to tool semantics.
type ToolServer struct {
	embedder embedding.Embedder
	similar  similarStore
	history  historyStore
	cache    historyCache
	log      *zap.Logger
}

func NewToolServer(embedder embedding.Embedder, similar similarStore, history historyStore, cache historyCache, log *zap.Logger) *ToolServer {
	return &ToolServer{
		embedder: embedder,
		similar:  similar,
		history:  history,
		cache:    cache,
		log:      log,
	}
}

// MCPServer builds the MCP server with both tools registered.
func (s *ToolServer) MCPServer() *server.MCPServer {
	mcpServer := server.NewMCPServer("automated-trading-system", "1.0.0",
		server.WithToolCapabilities(false),
	)

	similar := mcp.NewTool("get_similar_articles",
		mcp.WithDescription("Find stored articles whose content is semantically similar to the given text."),
		mcp.WithString("article_content",
			mcp.Required(),
			mcp.Description("Article text to match against the vector store."),
		),
	)
	similar.RawOutputSchema = itemsSchema
	mcpServer.AddTool(similar, s.handleSimilarArticles)

	history := mcp.NewTool("get_article_historical_analysis",
		mcp.WithDescription("Look up the stored analysis of an article by its id."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("Article id as stored by the ingestor."),
		),
	)
	history.RawOutputSchema = itemsSchema
	mcpServer.AddTool(history, s.handleHistoricalAnalysis)

	return mcpServer
}

func (s *ToolServer) handleSimilarArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("article_content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := s.SimilarArticles(ctx, content)
	if err != nil {
		s.log.Error("similar-articles lookup failed", zap.Error(err))
		return mcp.NewToolResultError("failed to search similar articles"), nil
	}
	return itemsResult(items), nil
}

func (s *ToolServer) handleHistoricalAnalysis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	articleID, err := req.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := s.HistoricalAnalysis(ctx, articleID)
	if err != nil {
		s.log.Error("historical-analysis lookup failed",
			zap.String("article_id", articleID),
			zap.Error(err),
		)
		return mcp.NewToolResultError("failed to look up article analysis"), nil
	}
	return itemsResult(items), nil
}

// SimilarArticles embeds the input and searches the vector store.
// Blank input short-circuits to an empty result without touching the
// embedder or the store.
func (s *ToolServer) SimilarArticles(ctx context.Context, content string) ([]map[string]any, error) {
	if strings.TrimSpace(content) == "" {
		return []map[string]any{}, nil
	}

	vector, err := s.embedder.Embed(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return s.similar.NearVector(ctx, vector, similarLimit)
}

// HistoricalAnalysis reads through the cache when one is configured.
// Cache failures degrade to a database read.
func (s *ToolServer) HistoricalAnalysis(ctx context.Context, articleID string) ([]map[string]any, error) {
	if s.cache != nil {
		rows, err := s.cache.Get(ctx, articleID)
		switch {
		case err != nil:
			s.log.Warn("cache read failed", zap.Error(err))
		case rows != nil:
			return rows, nil
		}
	}

	rows, err := s.history.HistoricalAnalysis(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, articleID, rows); err != nil {
			s.log.Warn("cache write failed", zap.Error(err))
		}
	}
	return rows, nil
}

func itemsResult(items []map[string]any) *mcp.CallToolResult {
	if items == nil {
		items = []map[string]any{}
	}
	payload := map[string]any{"items": items}
	fallback, _ := json.Marshal(payload)
	return mcp.NewToolResultStructured(payload, string(fallback))
}
