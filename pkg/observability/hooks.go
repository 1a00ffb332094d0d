// Package observability provides hooks for tracing and logging feed
// requests and response store activity.
//
// Hooks are process-wide and default to no-ops. Register implementations
// once at startup, before any client is used:
//
//	func main() {
//	    observability.SetRequestHooks(&myTracer{})
//	    observability.SetStoreHooks(&myStoreAudit{})
//	    // ... run application
//	}
//
// The client emits events as it works:
//
//	observability.Requests().OnRequest(ctx, "scoreboard", url)
//	// ... send request ...
//	observability.Requests().OnResponse(ctx, "scoreboard", 200, elapsed)
//
// Prometheus counters live on the client itself (see msf.Config.Registerer);
// hooks are for everything else.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Request Hooks
// =============================================================================

// RequestHooks receives events from feed requests.
type RequestHooks interface {
	// OnRequest records an outgoing request for feed.
	OnRequest(ctx context.Context, feed, url string)

	// OnResponse records the status of a completed request.
	OnResponse(ctx context.Context, feed string, statusCode int, duration time.Duration)

	// OnError records a request that got no response (network failure, timeout).
	OnError(ctx context.Context, feed string, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the response store.
type StoreHooks interface {
	// OnStoreHit records a stored copy served after a 304.
	OnStoreHit(ctx context.Context, name string)

	// OnStoreMiss records a 304 with no usable stored copy.
	OnStoreMiss(ctx context.Context, name string)

	// OnStoreSet records a response written to the store.
	OnStoreSet(ctx context.Context, name string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRequestHooks is a no-op implementation of RequestHooks.
type NoopRequestHooks struct{}

func (NoopRequestHooks) OnRequest(context.Context, string, string)              {}
func (NoopRequestHooks) OnResponse(context.Context, string, int, time.Duration) {}
func (NoopRequestHooks) OnError(context.Context, string, error)                 {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)      {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)     {}
func (NoopStoreHooks) OnStoreSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	requestHooks RequestHooks = NoopRequestHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetRequestHooks registers request hooks. A nil h is ignored.
func SetRequestHooks(h RequestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		requestHooks = h
	}
}

// SetStoreHooks registers store hooks. A nil h is ignored.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Requests returns the registered request hooks.
func Requests() RequestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return requestHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	requestHooks = NoopRequestHooks{}
	storeHooks = NoopStoreHooks{}
}
