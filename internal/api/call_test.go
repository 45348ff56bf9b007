package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledCallDecodesBodyOnce(t *testing.T) {
	t.Parallel()

	call := newCall(func() {})
	call.settle(settlement{status: 200, body: []byte(`{"id": 3, "name": "aws-prod"}`)})

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, call.Into(&out))
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "aws-prod", out.Name)
	assert.Equal(t, 200, call.Status())
	assert.NoError(t, call.Err())
}

func TestIntoWithNilTargetSkipsDecoding(t *testing.T) {
	t.Parallel()

	call := newCall(func() {})
	call.settle(settlement{status: 204})

	assert.NoError(t, call.Into(nil))
}

func TestLateSettlementAfterCancelIsDiscarded(t *testing.T) {
	t.Parallel()

	// Simulates a response that arrives after cancellation was
	// requested but before the transport abort took effect.
	cancelled := false
	call := newCall(func() { cancelled = true })
	call.Cancel()
	require.True(t, cancelled)

	call.settle(settlement{status: 200, body: []byte(`{"id": 1}`)})

	assert.ErrorIs(t, call.Err(), ErrCancelled)
	assert.ErrorIs(t, call.Into(nil), ErrCancelled)
	assert.Zero(t, call.Status())
}

func TestCancelIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	call := newCall(func() { calls++; cancel() })

	call.Cancel()
	call.Cancel()
	call.Cancel()

	assert.Equal(t, 1, calls)
	assert.Error(t, ctx.Err())
}

func TestIntoReportsDecodeFailure(t *testing.T) {
	t.Parallel()

	call := newCall(func() {})
	call.settle(settlement{status: 200, body: []byte(`{"id": `)})

	var out map[string]any
	err := call.Into(&out)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode response")
}
