package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with a purpose label so the logging
// decorator can attribute the request (e.g. "question-gen").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the purpose label on the context, or "unknown"
// when none was set.
func PurposeFrom(ctx context.Context) string {
	p, _ := ctx.Value(purposeCtxKey).(string)
	if p == "" {
		return "unknown"
	}
	return p
}
