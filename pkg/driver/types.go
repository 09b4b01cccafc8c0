// Package driver is the boundary between the pure trajectory core and
// whatever automation layer actually owns the pointer. It speaks an agnostic
// mouse-event vocabulary so the same walker works against CDP, Playwright, a
// synthetic test double, or a raw input device. The package deliberately
// knows nothing about element discovery, scrolling, or retries; callers own
// those.
package driver

// MouseEventType defines the type of mouse event. These strings align with
// standard DOM event types and common automation protocols.
type MouseEventType string

const (
	MouseMove    MouseEventType = "mouseMoved"
	MousePress   MouseEventType = "mousePressed"
	MouseRelease MouseEventType = "mouseReleased"
)

// MouseButton defines the mouse button.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// MouseEventData holds the data required to dispatch a mouse event.
type MouseEventData struct {
	Type MouseEventType
	X    float64
	Y    float64
	// Button that was pressed or released (relevant for Press/Release events).
	Button MouseButton
	// Buttons is a bitfield of the buttons currently held (1: Left, 2: Right,
	// 4: Middle). Required for realistic dragging simulation.
	Buttons int64
}

// ButtonsBitfield converts a held-button state into the standard bitfield
// representation used by browser automation protocols.
func ButtonsBitfield(button MouseButton) int64 {
	switch button {
	case ButtonLeft:
		return 1
	case ButtonRight:
		return 2
	case ButtonMiddle:
		return 4
	}
	return 0
}
