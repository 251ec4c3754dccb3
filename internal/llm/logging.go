package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/obrev/obrev/internal/store"
)

// WithLogging wraps a Provider so every call is appended to the event
// log. name is the configured provider ("anthropic", "openai", ...);
// the model actually serving the request is taken from the response.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &requestLogger{inner: p, provider: name, events: repo}
}

type requestLogger struct {
	inner    Provider
	provider string
	events   store.EventRepo
}

func (l *requestLogger) ModelID() string { return l.inner.ModelID() }

func (l *requestLogger) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed append never fails the request itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record llm request: %v\n", logErr)
	}

	return resp, err
}
