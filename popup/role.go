// SPDX-License-Identifier: Unlicense OR MIT

package popup

// Role is the owning surface role (an xdg_surface wrapping a wl_surface)
// that a popup attaches to. It is the collaborator side of the
// attach/commit/detach hooks in spec §4.1: the role calls into *Popup,
// and *Popup calls back into Role for the handful of things it needs from
// the surface (buffer presence, geometry origin, delegated configure).
type Role interface {
	// HasBuffer reports whether the surface currently has a buffer
	// attached. A commit with no buffer unmaps the popup without
	// destroying the object.
	HasBuffer() bool

	// HasSurface reports whether the role has an underlying surface at
	// all. A role without a surface skips the window-move step entirely
	// (spec §4.2: "If either role lacks an attached surface, the move is
	// skipped").
	HasSurface() bool

	// GeometryOrigin returns the role's window-geometry origin (set via
	// set_window_geometry), subtracted in the substrate position
	// computation.
	GeometryOrigin() (x, y int)

	// Surface returns an opaque handle for this role's surface, passed
	// through to Seat.TryExplicitGrab unexamined.
	Surface() interface{}

	// SendConfigure delegates the xdg_surface.configure event carrying
	// serial; the role is responsible for the actual wire write.
	SendConfigure(serial uint32)
}
