package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClient_DefaultModel(t *testing.T) {
	c := NewAnthropicClient("test-key", "")
	assert.Equal(t, anthropic.ModelClaudeHaiku4_5, c.model)
}

func TestNewAnthropicClient_ModelOverride(t *testing.T) {
	c := NewAnthropicClient("test-key", "claude-sonnet-4-5")
	assert.Equal(t, anthropic.Model("claude-sonnet-4-5"), c.model)
}
