package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/wayming/Automated-Trading-System/common/config"
)

// Embedder turns article content into the vector stored alongside it.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIEmbedder calls an OpenAI-compatible embedding endpoint. The
// defaults target a local server so no key is needed.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

func NewOpenAIEmbedder() *OpenAIEmbedder {
	cfg := openai.DefaultConfig(config.GetEnv("EMBEDDING_API_KEY", "none"))
	cfg.BaseURL = config.GetEnv("EMBEDDING_BASE_URL", "http://localhost:8081/v1")
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(cfg),
		model:  config.GetEnv("EMBEDDING_MODEL", "all-MiniLM-L6-v2"),
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding response contained no vectors")
	}
	return resp.Data[0].Embedding, nil
}
