package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	// DefaultMaxChunkTokens bounds one chunk-pass completion input.
	DefaultMaxChunkTokens = 500
	// DefaultReduceThreshold is the largest combined summary passed to the
	// cohesion call; above it the combined text goes through another
	// chunk-and-summarize round.
	DefaultReduceThreshold = 4000
)

const chunkPrompt = "Write a concise synopsis of the following text in 200 words or less. " +
	"Keep the key facts, names and numbers:\n\n%s"

const cohesionPrompt = "The following are partial synopses of one article, in order. " +
	"Rewrite them into a single cohesive synopsis of at most two paragraphs:\n\n%s"

var chunkParams = CompletionParams{
	MaxTokens:   256,
	Temperature: 0.2,
	TopP:        1,
}

var cohesionParams = CompletionParams{
	MaxTokens:        300,
	Temperature:      0.9,
	TopP:             1,
	FrequencyPenalty: 0.5,
}

// Summarizer produces a bounded abstractive summary of arbitrarily long text.
// The completion endpoint has a fixed input ceiling, so long input is split
// into token-bounded chunks, each chunk is summarized independently, and the
// joined partial summaries are re-reduced until they fit one final cohesion
// pass.
type Summarizer struct {
	completions     CompletionClient
	tokenizer       Tokenizer
	maxChunkTokens  int
	reduceThreshold int
}

func NewSummarizer(completions CompletionClient, tokenizer Tokenizer, maxChunkTokens, reduceThreshold int) *Summarizer {
	if maxChunkTokens <= 0 {
		maxChunkTokens = DefaultMaxChunkTokens
	}
	if reduceThreshold <= 0 {
		reduceThreshold = DefaultReduceThreshold
	}
	return &Summarizer{
		completions:     completions,
		tokenizer:       tokenizer,
		maxChunkTokens:  maxChunkTokens,
		reduceThreshold: reduceThreshold,
	}
}

// ChunkText splits text into consecutive chunks of at most maxChunkTokens
// tokens each, in order and without overlap. Decoding and rejoining the
// chunks reproduces the original token sequence.
func (s *Summarizer) ChunkText(text string) []string {
	tokens := s.tokenizer.Encode(text)
	parts := chunkTokens(tokens, s.maxChunkTokens)
	chunks := make([]string, len(parts))
	for i, part := range parts {
		chunks[i] = s.tokenizer.Decode(part)
	}
	return chunks
}

// Summarize returns the final trimmed synopsis of text. Chunk completions run
// with conservative decoding; the cohesion pass runs with higher temperature,
// a longer cap and a frequency penalty.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	combined := text
	for {
		chunks := s.ChunkText(combined)
		if len(chunks) == 0 {
			return "", nil
		}

		summaries := make([]string, len(chunks))
		for i, chunk := range chunks {
			out, err := s.completions.Complete(ctx, fmt.Sprintf(chunkPrompt, chunk), chunkParams)
			if err != nil {
				return "", fmt.Errorf("summarize chunk %d of %d: %w", i+1, len(chunks), err)
			}
			summaries[i] = out
		}

		combined = strings.Join(summaries, " ")
		if len(s.tokenizer.Encode(combined)) <= s.reduceThreshold {
			break
		}
	}

	out, err := s.completions.Complete(ctx, fmt.Sprintf(cohesionPrompt, combined), cohesionParams)
	if err != nil {
		return "", fmt.Errorf("cohesion pass: %w", err)
	}

	return strings.TrimSpace(out), nil
}

func chunkTokens(tokens []int, size int) [][]int {
	var parts [][]int
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		parts = append(parts, tokens[start:end])
	}
	return parts
}
