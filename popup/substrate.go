// SPDX-License-Identifier: Unlicense OR MIT

package popup

// Substrate is the X11 window underlying this popup's surface. All of the
// actual X11 property protocol, override-redirect semantics, and
// map/raise wire traffic live outside this package; popup only issues the
// handful of operations the state machine needs.
type Substrate interface {
	// SetOverrideRedirect toggles the override-redirect-equivalent
	// treatment a popup needs: no window manager decorations, no
	// participation in normal stacking/focus policy.
	SetOverrideRedirect(enabled bool)

	// Move repositions the window to substrate-absolute coordinates.
	Move(x, y int)

	// MapRaised maps the window (if unmapped) and raises it to the top
	// of its stacking position.
	MapRaised()

	// Unmap unmaps the window.
	Unmap()

	// InvalidateCache discards any cached subcompositor contents for
	// this role; popup contents are not preserved across an unmap (spec
	// §4.2 map sequence step 1).
	InvalidateCache()
}

// FrameClock is the frame-scheduling collaborator. popup only ever needs
// to suspend it between sending a configure and receiving its ack.
type FrameClock interface {
	// Freeze suspends frame production until the next explicit thaw
	// (driven externally, typically by the matching ack_configure).
	Freeze()
}

// ProtocolSink is the xdg_popup protocol object's outward-facing event
// emitter. A nil sink stands for a protocol object already destroyed.
// Popup nil-checks it before PopupDone (dismiss) and Repositioned
// (Reposition); Configure is called without a check.
type ProtocolSink interface {
	// Configure emits popup.configure(x, y, width, height).
	Configure(x, y, width, height int)

	// PopupDone emits popup.popup_done.
	PopupDone()

	// Repositioned emits popup.repositioned(token).
	Repositioned(token uint32)
}
