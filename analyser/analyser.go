package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// chatClient is the slice of the LLM SDK the analyser uses.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// The structured block sits between two lines of three-or-more
// hyphens. Multiline so the anchors bind per line, dotall so the block
// itself may span lines.
var structPattern = regexp.MustCompile(`(?ms)^-{3,}\s*\n(.*?)\n-{3,}$`)

// ArticleAnalyser submits article content to the LLM under the base
// prompt and extracts the delimited structured block from the reply.
type ArticleAnalyser struct {
	llm        chatClient
	model      string
	promptPath string
	log        *zap.Logger
}

func NewArticleAnalyser(p Provider, log *zap.Logger) *ArticleAnalyser {
	cfg := openai.DefaultConfig(p.APIKey)
	cfg.BaseURL = p.BaseURL
	return &ArticleAnalyser{
		llm:        openai.NewClientWithConfig(cfg),
		model:      p.Model,
		promptPath: p.PromptPath,
		log:        log,
	}
}

// Analyse returns the structured block (nil when absent or
// unparseable) and the trimmed raw response text.
func (a *ArticleAnalyser) Analyse(ctx context.Context, content string) (json.RawMessage, string, error) {
	basePrompt, err := os.ReadFile(a.promptPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read prompt: %w", err)
	}
	prompt := string(basePrompt) + "\n\n---\n\n" + content

	resp, err := a.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant"},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, "", errors.New("llm returned no choices")
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	a.logResponse(raw)
	return a.extractStructured(raw), raw, nil
}

// extractStructured pulls the delimited block out of the raw response
// and validates it as a JSON object. Any failure leaves the structured
// result absent; the raw text still flows downstream.
func (a *ArticleAnalyser) extractStructured(raw string) json.RawMessage {
	m := structPattern.FindStringSubmatch(raw)
	if m == nil {
		a.log.Info("no structured response found in llm reply")
		return nil
	}
	block := m[1]
	var obj map[string]any
	if err := json.Unmarshal([]byte(block), &obj); err != nil {
		a.log.Error("failed to decode structured block", zap.String("block", block), zap.Error(err))
		return nil
	}
	return json.RawMessage(block)
}

func (a *ArticleAnalyser) logResponse(raw string) {
	line := strings.Repeat(">", 80)
	a.log.Info("\n\n" + line + "\nFull Response:\n" + raw + "\n" + line + "\n")
}
