package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// settlement is the terminal state of a dispatched request: either a
// 2xx status with its body, or an error (typed, build failure, or
// ErrCancelled).
type settlement struct {
	status int
	body   []byte
	err    error
}

// Call is the handle returned for every dispatched request. The caller
// may cancel it at any time before settlement; any number of holders
// may call Cancel, only the first has effect. Reads block until the
// request settles.
type Call struct {
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
	result    settlement
}

func newCall(cancel context.CancelFunc) *Call {
	return &Call{cancel: cancel, done: make(chan struct{})}
}

// Cancel aborts the in-flight transport operation. The outcome of a
// cancelled call is always ErrCancelled, even if a response arrives
// after the cancel was requested. Cancelling a settled call is a no-op.
func (c *Call) Cancel() {
	if c.cancelled.CompareAndSwap(false, true) {
		c.cancel()
	}
}

// Done is closed once the call has settled.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Err blocks until settlement and returns the call's outcome.
func (c *Call) Err() error {
	<-c.done
	return c.result.err
}

// Into blocks until settlement and, on success, decodes the response
// body into out. Pass nil for endpoints with no response payload.
func (c *Call) Into(out any) error {
	<-c.done

	if c.result.err != nil {
		return c.result.err
	}
	if out == nil || len(c.result.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.result.body, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", c.result.status, err)
	}
	return nil
}

// Status blocks until settlement and returns the HTTP status, or 0 when
// no response was received.
func (c *Call) Status() int {
	<-c.done
	return c.result.status
}

// settle records the outcome exactly once. Only the pipeline goroutine
// calls it; a settled call never changes again. The cancellation flag
// wins over any late result.
func (c *Call) settle(result settlement) {
	if c.cancelled.Load() {
		result = settlement{err: ErrCancelled}
	}
	c.result = result
	close(c.done)
}
