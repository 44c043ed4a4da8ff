package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLIsLazy(t *testing.T) {
	log = nil
	require.NotNil(t, L())
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFrom(ctx))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestFromCtxWithoutRequestID(t *testing.T) {
	assert.Same(t, L(), FromCtx(context.Background()))
}
