// Package meta carries command metadata through context.Context.
package meta

import (
	"context"

	"github.com/code19m/errx"
)

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID correlates every log line, span and published event of one command.
	TraceID ContextKey = "trace_id"

	// ServiceName identifies the name of current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"

	// CommandName is the name of the tab command being executed.
	CommandName ContextKey = "command_name"

	// TabID identifies the tab the command targets.
	TabID ContextKey = "tab_id"

	// Waiter identifies the staff member who issued the command.
	Waiter ContextKey = "waiter"
)

const (
	CodeMetaNotFound     = "META_NOT_FOUND"
	CodeMetaTypeMismatch = "META_TYPE_MISMATCH"
)

// keys lists every key ExtractMetaFromContext looks for, in a stable order.
var keys = []ContextKey{ //nolint:gochecknoglobals // fixed lookup list
	TraceID,
	ServiceName,
	ServiceVersion,
	CommandName,
	TabID,
	Waiter,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// Empty values are skipped.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext returns every known non-empty metadata value of ctx.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range keys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// Find returns the value for key, or an empty string.
func Find(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// ShouldGetMeta returns the value for key or an error when it is missing or not a string.
func ShouldGetMeta(ctx context.Context, key ContextKey) (string, error) {
	raw := ctx.Value(key)
	if raw == nil {
		return "", errx.New("meta key not found in context",
			errx.WithCode(CodeMetaNotFound),
			errx.WithDetails(errx.D{"key": string(key)}),
		)
	}

	v, ok := raw.(string)
	if !ok {
		return "", errx.New("meta value type mismatch, expected string",
			errx.WithCode(CodeMetaTypeMismatch),
			errx.WithDetails(errx.D{"key": string(key)}),
		)
	}
	return v, nil
}
