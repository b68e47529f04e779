package ctxutil

import "context"

type traceDataKey struct{}

// TraceData is the request-scoped correlation record the HTTP layer attaches
// to every request: IDs for log/trace correlation plus the caller's network
// address as resolved by the router.
type TraceData struct {
	TraceID   string
	RequestID string
	ClientIP  string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	if td, ok := ctx.Value(traceDataKey{}).(*TraceData); ok {
		return td
	}
	return nil
}
