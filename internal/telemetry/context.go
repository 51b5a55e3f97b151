package telemetry

import "context"

// turnIDKey is the context key type for turn IDs.
type turnIDKey struct{}

// WithTurnID returns a child context carrying the given turn ID.
func WithTurnID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, turnIDKey{}, id)
}

// TurnIDFromContext returns the turn ID from ctx, if present and non-empty.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(turnIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
