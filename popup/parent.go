// SPDX-License-Identifier: Unlicense OR MIT

package popup

// ParentRole is the collaborator a popup is anchored to: either a
// toplevel or another popup. *Popup itself implements ParentRole (see
// parent_impl.go), so a chain of nested popups is just a chain of
// ParentRole values with no separate tree type; code that needs
// popup-specific behavior (clearing Topmost, walking the grab chain)
// type-asserts the parent back to *Popup.
type ParentRole interface {
	// Kind reports whether this parent is a toplevel or a popup.
	Kind() RoleKind

	// CurrentGeometry returns the parent's window geometry, used by
	// positioners as the anchor rectangle and by the window-move
	// arithmetic as the geometry origin to subtract.
	CurrentGeometry() Geometry

	// RootPosition returns the parent's position in substrate root
	// coordinates.
	RootPosition() (x, y int)

	// OnReconstrain installs two callbacks: onConfigure fires when the
	// parent's role is reconfigured, onResize when its surface resizes.
	// A parent that cannot distinguish the two may call both from a
	// single "geometry may have changed" signal (spec §9) — the popup's
	// reaction is identical either way.
	OnReconstrain(onConfigure, onResize func()) CancelKey

	// Retain and Release implement the owning-reference discipline: a
	// popup retains its parent for the lifetime of the link and releases
	// it at destroy.
	Retain()
	Release()
}
