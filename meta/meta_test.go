package meta_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechArp/CafeApp/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	tests := []struct {
		name        string
		initialCtx  context.Context
		metaData    map[meta.ContextKey]string
		keyToVerify meta.ContextKey
		valueExpect string
		nilValue    bool
	}{
		{
			name:        "inject single value",
			initialCtx:  t.Context(),
			metaData:    map[meta.ContextKey]string{meta.TraceID: "abc-123"},
			keyToVerify: meta.TraceID,
			valueExpect: "abc-123",
		},
		{
			name:       "inject multiple values",
			initialCtx: t.Context(),
			metaData: map[meta.ContextKey]string{
				meta.TraceID:     "trace-123",
				meta.TabID:       "tab-1",
				meta.CommandName: "open_tab",
			},
			keyToVerify: meta.TabID,
			valueExpect: "tab-1",
		},
		{
			name:        "skip empty values",
			initialCtx:  t.Context(),
			metaData:    map[meta.ContextKey]string{meta.TraceID: "trace-123", meta.Waiter: ""},
			keyToVerify: meta.Waiter,
			nilValue:    true,
		},
		{
			name:        "overwrite existing value",
			initialCtx:  context.WithValue(t.Context(), meta.TraceID, "old-trace-id"),
			metaData:    map[meta.ContextKey]string{meta.TraceID: "new-trace-id"},
			keyToVerify: meta.TraceID,
			valueExpect: "new-trace-id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := meta.InjectMetaToContext(tc.initialCtx, tc.metaData)

			if tc.nilValue {
				assert.Nil(t, ctx.Value(tc.keyToVerify))
				return
			}
			assert.Equal(t, tc.valueExpect, ctx.Value(tc.keyToVerify))
		})
	}
}

func TestExtractMetaFromContext(t *testing.T) {
	ctx := t.Context()
	ctx = context.WithValue(ctx, meta.TraceID, "trace-123")
	ctx = context.WithValue(ctx, meta.TabID, "tab-1")
	ctx = context.WithValue(ctx, meta.ServiceName, 42)
	ctx = context.WithValue(ctx, meta.ContextKey("custom_key"), "custom_value")

	assert.Equal(t, map[meta.ContextKey]string{
		meta.TraceID: "trace-123",
		meta.TabID:   "tab-1",
	}, meta.ExtractMetaFromContext(ctx))
}

func TestShouldGetMeta(t *testing.T) {
	ctx := context.WithValue(t.Context(), meta.CommandName, "serve_drink")
	ctx = context.WithValue(ctx, meta.TabID, 7)

	v, err := meta.ShouldGetMeta(ctx, meta.CommandName)
	require.NoError(t, err)
	assert.Equal(t, "serve_drink", v)

	_, err = meta.ShouldGetMeta(ctx, meta.Waiter)
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, meta.CodeMetaNotFound))

	_, err = meta.ShouldGetMeta(ctx, meta.TabID)
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, meta.CodeMetaTypeMismatch))
}

func TestFind(t *testing.T) {
	ctx := context.WithValue(t.Context(), meta.Waiter, "alice")

	assert.Equal(t, "alice", meta.Find(ctx, meta.Waiter))
	assert.Empty(t, meta.Find(ctx, meta.TraceID))
}
