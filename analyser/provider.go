package main

import (
	"fmt"
	"os"

	"github.com/wayming/Automated-Trading-System/common/config"
)

// Provider carries everything needed to reach one OpenAI-compatible
// chat endpoint.
type Provider struct {
	Model      string
	BaseURL    string
	APIKey     string
	PromptPath string
}

// NewDeepSeekProvider reads the DeepSeek settings from the
// environment. A missing key or unreadable prompt file is fatal at
// startup.
func NewDeepSeekProvider() (Provider, error) {
	key, err := config.Require("DEEPSEEK_API_KEY")
	if err != nil {
		return Provider{}, err
	}
	p := Provider{
		Model:      config.GetEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		BaseURL:    config.GetEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		APIKey:     key,
		PromptPath: config.GetEnv("ANALYSER_PROMPT_PATH", "analyser/prompt.txt"),
	}
	if _, err := os.Stat(p.PromptPath); err != nil {
		return Provider{}, fmt.Errorf("prompt file not readable: %w", err)
	}
	return p, nil
}
