// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends, and without giving the
// pure layout engine a logger. Consumers register hooks at startup to
// receive events about engine execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine free of observability framework dependencies
//   - Allows different backends (OpenTelemetry, Prometheus, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Engine().OnCompactStart(typ, len(layout))
//	// ... compact ...
//	observability.Engine().OnCompactComplete(typ, len(layout), duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from layout engine operations.
//
// Hook methods must be cheap and must not panic; they run inline on the
// caller's goroutine. The engine passes no context because its functions
// are pure and non-blocking.
type EngineHooks interface {
	// OnCompactStart records the start of a compaction pass.
	OnCompactStart(compactType string, itemCount int)

	// OnCompactComplete records a finished compaction pass.
	OnCompactComplete(compactType string, itemCount int, duration time.Duration)

	// OnPropagationAborted records a collision propagation that exceeded
	// its iteration cap and returned a partial result. This is the
	// diagnostic channel for pathological (cyclic) inputs; it is not an
	// error and the engine does not fail the operation.
	OnPropagationAborted(op string, iterations, itemCount int)

	// OnPlacementOverflow records an auto-placement scan that exceeded its
	// iteration cap before finding a free slot for an item.
	OnPlacementOverflow(itemID string, iterations int)

	// OnResizeReverted records a resize rejected as a whole because the
	// resized item would have been forced into a static obstacle.
	OnResizeReverted(itemID string)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnCompactStart(string, int)                   {}
func (NoopEngineHooks) OnCompactComplete(string, int, time.Duration) {}
func (NoopEngineHooks) OnPropagationAborted(string, int, int)        {}
func (NoopEngineHooks) OnPlacementOverflow(string, int)              {}
func (NoopEngineHooks) OnResizeReverted(string)                      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine operations.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
}
