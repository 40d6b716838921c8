// SPDX-License-Identifier: Unlicense OR MIT

package popup

var _ ParentRole = (*Popup)(nil)

// Kind reports PopupRole: a *Popup used as a ParentRole is, by
// definition, another popup in the chain.
func (p *Popup) Kind() RoleKind { return PopupRole }

// CurrentGeometry returns this popup's acknowledged position and last
// observed size, used by a child popup's positioner as its anchor and by
// the child's window-move arithmetic as the geometry origin.
func (p *Popup) CurrentGeometry() Geometry {
	return Geometry{X: p.x, Y: p.y, Width: p.width, Height: p.height}
}

// RootPosition returns this popup's own substrate-root position, valid
// once mapped.
func (p *Popup) RootPosition() (x, y int) {
	return p.substrateX, p.substrateY
}

// OnReconstrain subscribes to this popup's own reconstraint signal so
// that a grandchild popup reacts when its immediate parent (this popup)
// reconfigures or resizes. onConfigure fires when this popup's
// AckConfigure transfers a new position; onResize fires when NoteSize
// records a changed size.
func (p *Popup) OnReconstrain(onConfigure, onResize func()) CancelKey {
	p.childConfigureCbs = append(p.childConfigureCbs, onConfigure)
	p.childResizeCbs = append(p.childResizeCbs, onResize)
	idx := len(p.childConfigureCbs) - 1
	return func() {
		p.childConfigureCbs[idx] = nil
		p.childResizeCbs[idx] = nil
	}
}

// Retain and Release implement ParentRole's ownership discipline for a
// popup acting as another popup's parent: they adjust refcount the same
// way attach/detach does.
func (p *Popup) Retain() {
	p.refcount++
}

func (p *Popup) Release() {
	p.release()
}
