// Package input defines the pointer event delivered to blocks. Events
// originate outside the core (the bar's click stream) and are routed by
// the scheduler to every block; a block acts only when the event's Name
// matches its own identity.
package input

// Button designates which pointer button produced an event.
type Button int

const (
	ButtonUnknown Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Event is a single routed click. Name carries the target block
// identity; an empty Name matches no block.
type Event struct {
	Name   string
	Button Button
}
