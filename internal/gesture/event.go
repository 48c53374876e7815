package gesture

import (
	"time"

	"TouchBoard/internal/geom"
)

// PointerID identifies one pointer (finger or stylus tip) across the events
// of a gesture. IDs are assigned by the host input layer.
type PointerID int64

// Kind is the type of a pointer event.
type Kind uint8

const (
	Press Kind = iota
	Move
	Release
	// Cancel is delivered when a pointer is lost (device disconnect, grab
	// stolen by the host). Handlers treat it exactly like Release.
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Device is the hardware class a pointer event originated from.
type Device uint8

const (
	Touch Device = iota
	Stylus
)

func (d Device) String() string {
	if d == Stylus {
		return "stylus"
	}
	return "touch"
}

// Buttons is a bitmask of held pointer buttons. For a stylus the primary
// button is the barrel button.
type Buttons uint32

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Event is one raw pointer event in device space, as sourced by the host.
type Event struct {
	Kind     Kind
	Pointer  PointerID
	Device   Device
	Buttons  Buttons
	Position geom.Point
	Time     time.Time
}

// Gesture is the classification result computed once per pointer sequence.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureDraw
	GestureErase
	GesturePan
	GesturePanZoom
)

func (g Gesture) String() string {
	switch g {
	case GestureDraw:
		return "draw"
	case GestureErase:
		return "erase"
	case GesturePan:
		return "pan"
	case GesturePanZoom:
		return "pan+zoom"
	}
	return "none"
}
