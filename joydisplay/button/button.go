// Package button wires push-buttons to their interrupt handlers.
//
// Handlers registered here run in interrupt context on hardware: they must
// not block, allocate or log.
package button

// Error is a button configuration error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilSource  = Error("nil edge source")
	ErrNilHandler = Error("nil handler")
)

// Edge is a signal transition that can trigger a handler.
type Edge uint8

const (
	Falling Edge = iota
	Rising
)

// EdgeSource is an input that calls back on signal edges.
type EdgeSource interface {
	Register(edge Edge, fn func()) error
}

// AttachReset makes a falling edge on src call enter. On hardware enter is
// machine.EnterBootloader and never returns.
func AttachReset(src EdgeSource, enter func()) error {
	if src == nil {
		return ErrNilSource
	}
	if enter == nil {
		return ErrNilHandler
	}
	return src.Register(Falling, enter)
}
