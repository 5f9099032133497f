package skymodel

import (
	"ringsky/core/geometry"
)

// Observer receives per-ring notifications during assembly. The
// assembler reports through this interface instead of owning any global
// logging state; callers inject whatever sink they want.
type Observer interface {
	// RingComputed is called once per ring, after its disk pair is added.
	RingComputed(r geometry.RingResult)
}

// NopObserver discards all notifications.
type NopObserver struct{}

// RingComputed implements Observer.
func (NopObserver) RingComputed(geometry.RingResult) {}
