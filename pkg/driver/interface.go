package driver

import (
	"context"
	"time"
)

// Executor is the contract the automation layer implements. Implementations
// are expected to respect context cancellation in both methods; the walker
// relies on that to abandon an in-progress move between successive points.
type Executor interface {
	// Sleep pauses execution, respecting context cancellation.
	Sleep(ctx context.Context, d time.Duration) error

	// DispatchMouseEvent sends a mouse event using agnostic data structures.
	DispatchMouseEvent(ctx context.Context, data MouseEventData) error
}
