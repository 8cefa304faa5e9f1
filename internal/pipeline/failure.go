package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// FailureKind tags a per-item failure for logging. Failures never abort a
// stage; the row keeps its NULL column and is retried on the next run.
type FailureKind string

const (
	FailureNetwork FailureKind = "network"
	FailureParse   FailureKind = "parse"
	FailureQuota   FailureKind = "quota"
	FailureTimeout FailureKind = "timeout"
	FailureUnknown FailureKind = "unknown"
)

func classify(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		if openaiErr.StatusCode == 429 || openaiErr.StatusCode == 402 {
			return FailureQuota
		}
		return FailureNetwork
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		if anthropicErr.StatusCode == 429 {
			return FailureQuota
		}
		return FailureNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FailureParse
	}

	return FailureUnknown
}
