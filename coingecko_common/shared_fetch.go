package coingecko_common

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/status-im/market-dashboard/market_errors"
)

// DefaultSharedFetchTimeout bounds one shared provider call, retries included
const DefaultSharedFetchTimeout = 2 * time.Minute

// SharedFetch collapses concurrent fetches of the same key into one call.
// The call runs on a context detached from any single caller: a caller that
// goes away only stops waiting, and the call is cancelled once no caller is
// left or the timeout passes.
type SharedFetch struct {
	group   singleflight.Group
	timeout time.Duration

	mu    sync.Mutex
	calls map[string]*sharedCall
}

type sharedCall struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewSharedFetch creates a SharedFetch; a non-positive timeout uses DefaultSharedFetchTimeout
func NewSharedFetch(timeout time.Duration) *SharedFetch {
	if timeout <= 0 {
		timeout = DefaultSharedFetchTimeout
	}
	return &SharedFetch{
		timeout: timeout,
		calls:   make(map[string]*sharedCall),
	}
}

// Do runs fn once for all concurrent callers of key and returns its result.
// If ctx ends first the caller gets a NetworkFailure while the others keep waiting.
func (f *SharedFetch) Do(ctx context.Context, key string, fn func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	f.mu.Lock()
	call, ok := f.calls[key]
	if !ok {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
		call = &sharedCall{ctx: callCtx, cancel: cancel}
		f.calls[key] = call
	}
	call.waiters++
	// Joining and starting happen under mu so a key in calls always maps to the running flight
	ch := f.group.DoChan(key, func() (interface{}, error) {
		defer f.finish(key, call)
		return fn(call.ctx)
	})
	f.mu.Unlock()

	select {
	case res := <-ch:
		f.leave(key, call, false)
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		f.leave(key, call, true)
		return nil, market_errors.NewNetworkFailure(ctx.Err())
	}
}

// Waiters is the number of callers currently waiting on key
func (f *SharedFetch) Waiters(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if call, ok := f.calls[key]; ok {
		return call.waiters
	}
	return 0
}

func (f *SharedFetch) leave(key string, call *sharedCall, abandoned bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call.waiters--
	if !abandoned || call.waiters > 0 {
		return
	}

	// Last caller gone: stop the call and let the next caller start a fresh one
	if f.calls[key] == call {
		f.group.Forget(key)
		delete(f.calls, key)
	}
	call.cancel()
}

func (f *SharedFetch) finish(key string, call *sharedCall) {
	f.mu.Lock()
	if f.calls[key] == call {
		f.group.Forget(key)
		delete(f.calls, key)
	}
	f.mu.Unlock()
	call.cancel()
}
