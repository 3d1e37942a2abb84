package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const structuredReply = `The article reads bullish for the stock.

---
{"stock_code": "TSLA", "stock_name": "Tesla", "analysis": {"short_term": {"score": "+65", "driver": "cheaper model", "risk": "margin pressure"}}, "alerts": [], "conclusion": "Positive."}
---`

func TestExtractStructured(t *testing.T) {
	a := &ArticleAnalyser{log: zap.NewNop()}

	tests := []struct {
		name string
		raw  string
		want string // expected stock_code, "" means absent
	}{
		{
			name: "block present",
			raw:  structuredReply,
			want: "TSLA",
		},
		{
			name: "longer delimiters and trailing spaces",
			raw:  "preamble\n-----   \n{\"stock_code\": \"AAPL\"}\n----",
			want: "AAPL",
		},
		{
			name: "multiline block",
			raw:  "---\n{\n  \"stock_code\": \"MSFT\",\n  \"conclusion\": \"fine\"\n}\n---",
			want: "MSFT",
		},
		{
			name: "no block",
			raw:  "I cannot find a structured result here.",
			want: "",
		},
		{
			name: "two dashes are not a delimiter",
			raw:  "--\n{\"stock_code\": \"NVDA\"}\n--",
			want: "",
		},
		{
			name: "invalid json inside block",
			raw:  "---\n{stock_code: TSLA}\n---",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.extractStructured(tt.raw)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			var obj map[string]any
			require.NoError(t, json.Unmarshal(got, &obj))
			assert.Equal(t, tt.want, obj["stock_code"])
		})
	}
}

func TestExtractStructuredIsIdempotent(t *testing.T) {
	a := &ArticleAnalyser{log: zap.NewNop()}
	first := a.extractStructured(structuredReply)
	second := a.extractStructured(structuredReply)
	assert.Equal(t, first, second)
}

type fakeChat struct {
	reply string
	err   error
	req   openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func writePrompt(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Assess this article."), 0o644))
	return path
}

func TestAnalyseComposesPromptAndExtracts(t *testing.T) {
	chat := &fakeChat{reply: structuredReply + "\n"}
	a := &ArticleAnalyser{llm: chat, model: "deepseek-chat", promptPath: writePrompt(t), log: zap.NewNop()}

	structured, raw, err := a.Analyse(context.Background(), "Tesla launches cheaper Model Y")
	require.NoError(t, err)

	require.Len(t, chat.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, chat.req.Messages[0].Role)
	assert.Equal(t, "You are a helpful assistant", chat.req.Messages[0].Content)
	assert.Equal(t, "Assess this article.\n\n---\n\nTesla launches cheaper Model Y", chat.req.Messages[1].Content)

	assert.Equal(t, strings.TrimSpace(structuredReply), raw)
	require.NotNil(t, structured)
	var obj map[string]any
	require.NoError(t, json.Unmarshal(structured, &obj))
	assert.Equal(t, "TSLA", obj["stock_code"])
}

func TestAnalyseReturnsRawWhenNoBlock(t *testing.T) {
	chat := &fakeChat{reply: "  nothing structured today  "}
	a := &ArticleAnalyser{llm: chat, model: "deepseek-chat", promptPath: writePrompt(t), log: zap.NewNop()}

	structured, raw, err := a.Analyse(context.Background(), "content")
	require.NoError(t, err)
	assert.Nil(t, structured)
	assert.Equal(t, "nothing structured today", raw)
}
