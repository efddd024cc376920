// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about layout operations and store
// access.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not
// by libraries) and keeps the engine free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOperationHooks(&myOperationHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Surfaces call hooks to emit events:
//
//	observability.Operation().OnOperationStart(ctx, "repack", len(layout))
//	// ... run the operation ...
//	observability.Operation().OnOperationComplete(ctx, "repack", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// OperationHooks receives events from layout engine operations
// (add, push, resize, swap, repack).
type OperationHooks interface {
	// OnOperationStart records the start of an operation over a layout
	// of the given widget count.
	OnOperationStart(ctx context.Context, op string, widgets int)

	// OnOperationComplete records the outcome of an operation.
	OnOperationComplete(ctx context.Context, op string, duration time.Duration, err error)
}

// StoreHooks receives events from layout store operations.
type StoreHooks interface {
	// OnLoad records a layout read.
	OnLoad(ctx context.Context, name string, found bool)

	// OnSave records a layout write.
	OnSave(ctx context.Context, name string, widgets int)
}

// NoopOperationHooks is a no-op implementation of OperationHooks.
type NoopOperationHooks struct{}

func (NoopOperationHooks) OnOperationStart(context.Context, string, int) {}
func (NoopOperationHooks) OnOperationComplete(context.Context, string, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, bool) {}
func (NoopStoreHooks) OnSave(context.Context, string, int)  {}

var (
	operationHooks OperationHooks = NoopOperationHooks{}
	storeHooks     StoreHooks     = NoopStoreHooks{}
	hooksMu        sync.RWMutex
)

// SetOperationHooks registers custom operation hooks.
// This should be called once at application startup.
func SetOperationHooks(h OperationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		operationHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Operation returns the registered operation hooks.
func Operation() OperationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return operationHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	operationHooks = NoopOperationHooks{}
	storeHooks = NoopStoreHooks{}
}
