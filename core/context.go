package core

import "context"

// Context keys for command options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	progressKey       contextKey = "progress"
)

// WithSuppressHeader marks ctx so commands print no banners or notices.
// The MCP server uses it because stdout carries the protocol stream.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withoutProgress disables the progress bar regardless of configuration.
func withoutProgress(ctx context.Context) context.Context {
	return context.WithValue(ctx, progressKey, false)
}

// allowProgress returns whether a progress bar may be drawn.
func allowProgress(ctx context.Context) bool {
	val := ctx.Value(progressKey)
	if val == nil {
		return !shouldSuppressHeader(ctx)
	}
	allowed, ok := val.(bool)
	return ok && allowed
}
