// SPDX-License-Identifier: Unlicense OR MIT

package popup

// CancelKey is an opaque subscription handle. The collaborator that
// issued it (Seat.OnDestroy, ParentRole.OnReconstrain) is the only thing
// that knows how to interpret it; popup only ever stores it and passes it
// back to cancel the subscription. Modelled as a bare func rather than an
// int/uuid so the collaborator owns comparison and lifetime semantics
// (spec §9).
type CancelKey func()

// Cancel withdraws the subscription. A nil key is a no-op, so call sites
// don't need a guard for "was this ever installed".
func (k CancelKey) Cancel() {
	if k != nil {
		k()
	}
}

// Seat is the input-focus-group collaborator consumed for grabs. The
// actual pointer/keyboard implementation lives outside this package;
// popup only ever asks it to try a grab and to notify it of destruction.
type Seat interface {
	// TryExplicitGrab asks the seat to route input to surface under the
	// given serial. surface is whatever the popup's Role.Surface()
	// returned; it is opaque to this package and passed straight
	// through. Returns false if the serial is stale or the seat refuses.
	TryExplicitGrab(surface interface{}, serial uint32) bool

	// OnDestroy registers cb to run when the seat is destroyed and
	// returns a key to cancel the registration.
	OnDestroy(cb func()) CancelKey
}
