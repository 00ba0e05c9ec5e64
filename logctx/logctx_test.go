package logctx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom_DefaultWhenMissing(t *testing.T) {
	require.Same(t, slog.Default(), From(context.Background()))
}

func TestIntoFrom_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")

	ctx := Into(context.Background(), l)
	From(ctx).Info("hello")

	require.Contains(t, buf.String(), "request_id=abc")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestFrom_NilLoggerFallsBack(t *testing.T) {
	ctx := Into(context.Background(), nil)
	require.Same(t, slog.Default(), From(ctx))
}

func TestWith_TagsOperation(t *testing.T) {
	var buf bytes.Buffer
	ctx := Into(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "r1"))

	With(ctx, "service/posts/CreatePost", "owner", "u1").Info("post_created")

	out := buf.String()
	require.Contains(t, out, "request_id=r1")
	require.Contains(t, out, "op=service/posts/CreatePost")
	require.Contains(t, out, "owner=u1")
}
