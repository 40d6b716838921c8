// SPDX-License-Identifier: Unlicense OR MIT

package popup

// Positioner computes popup geometry as a pure function of the parent's
// current geometry. The real geometry math (anchors, gravity, constraint
// adjustment against output edges) lives entirely outside this package;
// popup only ever calls Calculate and IsReactive for geometry, plus
// Validate and Retain/Release.
type Positioner interface {
	// Calculate returns the popup geometry (parent-relative origin plus
	// size) for the given parent geometry. It must be side-effect free:
	// the core may call it more than once for the same parent state
	// (once on creation, again on every reconstraint).
	Calculate(parent Geometry) Geometry

	// IsReactive reports whether this positioner wants to be
	// recalculated when the parent's geometry changes. Non-reactive
	// positioners keep their initial configure authoritative until the
	// client explicitly repositions.
	IsReactive() bool

	// Validate performs the protocol's completeness check (anchor rect
	// set, size set, and so on) and returns ErrInvalidPositioner-class
	// errors. Called on creation and on every reposition request.
	Validate() error

	// Retain and Release implement the shared-ownership discipline
	// described in spec §9: popup retains a positioner for as long as it
	// is installed and releases it when replaced or on destroy.
	Retain()
	Release()
}
