// SPDX-License-Identifier: Unlicense OR MIT

package popup

// markTopmost makes p the topmost popup in its chain, clearing Topmost on
// its parent if the parent is itself a popup. At most one popup in any
// parent chain carries Topmost (spec §3, §8).
func (p *Popup) markTopmost() {
	p.state = p.state.Set(Topmost)
	if pp, ok := p.parent.(*Popup); ok {
		pp.state = pp.state.Clear(Topmost)
	}
}

// isParentGrabbable reports whether this popup's parent can currently
// have a grab established on it for seat: a toplevel parent always is;
// a popup parent only if it is already grabbed by the same seat (spec
// §4.3).
func (p *Popup) isParentGrabbable(seat Seat) bool {
	if p.parent.Kind() == Toplevel {
		return true
	}
	pp, ok := p.parent.(*Popup)
	if !ok {
		return false
	}
	return pp.state.Has(Grabbed) && pp.grabHolder == seat
}

// revertToParent re-establishes the grab on the parent when a grabbed (or
// pending-grab) popup is detached or dismissed, using the same seat and
// current_grab_serial. Topmost is restored on the parent even if the
// re-establishment fails, since an unmapped-but-topmost popup must still
// be destroyable (spec §4.3).
func (p *Popup) revertToParent() {
	seat := p.grabHolder
	serial := p.currentGrabSerial
	hadGrab := p.state.Has(Grabbed)

	p.grabHolderKey.Cancel()
	p.grabHolderKey = nil
	p.pendingGrabKey.Cancel()
	p.pendingGrabKey = nil
	p.state = p.state.Clear(Grabbed | PendingGrab)
	p.grabHolder = nil
	p.pendingGrabSeat = nil

	pp, ok := p.parent.(*Popup)
	if !ok {
		return
	}
	pp.state = pp.state.Set(Topmost)

	if !hadGrab || seat == nil || pp.role == nil {
		return
	}
	if pp.isParentGrabbable(seat) && seat.TryExplicitGrab(pp.role.Surface(), serial) {
		pp.setGrabHolder(seat, serial)
		pp.log.Debug("grab reverted to parent", "serial", serial)
		return
	}
	pp.log.Debug("grab revert to parent failed, dismissing parent")
	pp.dismiss(true)
}

// dismiss emits popup_done (if the protocol object survives), unmaps, and
// clears Grabbed. When do_parents is true, dismissal cascades up the
// parent chain (spec §4.3).
func (p *Popup) dismiss(doParents bool) {
	if p.sink != nil {
		p.sink.PopupDone()
	}
	if p.state.Has(Mapped) {
		p.unmap()
	}
	p.grabHolderKey.Cancel()
	p.grabHolderKey = nil
	p.grabHolder = nil
	p.state = p.state.Clear(Grabbed)
	p.log.Debug("popup dismissed", "cascade", doParents)

	if doParents {
		if pp, ok := p.parent.(*Popup); ok {
			pp.dismiss(true)
		}
	}
}
