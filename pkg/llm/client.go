package llm

import "context"

// CompletionParams are the decoding knobs for a single completion request.
// Providers without an equivalent for a field ignore it.
type CompletionParams struct {
	MaxTokens        int64
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// CompletionClient is a language-model completion endpoint.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, params CompletionParams) (string, error)
}

// Tokenizer encodes and decodes text for a fixed model vocabulary.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
}
