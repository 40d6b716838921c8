// SPDX-License-Identifier: Unlicense OR MIT

package popup

// Grab implements the popup.grab request (spec §4.3, §6). It is legal
// only when the popup is either unmapped or not currently grabbed: an
// already-grabbed popup silently ignores a second grab request, and a
// mapped-but-ungrabbed popup raises ErrInvalidGrab. Otherwise the request
// is buffered as a pending grab until the popup maps.
func (p *Popup) Grab(seat Seat, serial uint32) error {
	if p.role == nil {
		return nil
	}
	if p.state.Has(Grabbed) {
		return nil
	}
	if p.state.Has(Mapped) {
		return ErrInvalidGrab
	}
	// A grab request arriving while a seat-destroy or grab-holder
	// listener is already installed is silently dropped: the popup is
	// considered already committed to a grab path (spec §9 ambiguity,
	// preserved as-is).
	if p.pendingGrabKey != nil || p.grabHolderKey != nil {
		p.log.Debug("grab request dropped, listener already installed")
		return nil
	}

	p.pendingGrabSeat = seat
	p.pendingGrabSerial = serial
	p.pendingGrabKey = seat.OnDestroy(func() { p.onPendingGrabSeatDestroyed() })
	p.markTopmost()
	p.state = p.state.Set(PendingGrab)
	p.log.Debug("grab pending", "serial", serial)
	return nil
}

// establishPendingGrab runs at map time when PendingGrab is set (spec
// §4.3 "Grab establishment"). If the recorded seat is gone, or the
// parent is not grabbable, or the seat refuses, the popup dismisses
// without cascading to parents.
func (p *Popup) establishPendingGrab() {
	seat := p.pendingGrabSeat
	serial := p.pendingGrabSerial

	p.pendingGrabKey.Cancel()
	p.pendingGrabKey = nil
	p.state = p.state.Clear(PendingGrab)

	if seat == nil {
		p.log.Debug("pending grab seat gone at map, dismissing")
		p.dismiss(false)
		return
	}
	if !p.isParentGrabbable(seat) {
		p.log.Debug("parent not grabbable at map, dismissing")
		p.dismiss(false)
		return
	}
	if !seat.TryExplicitGrab(p.role.Surface(), serial) {
		p.log.Debug("seat refused grab at map, dismissing")
		p.dismiss(false)
		return
	}
	p.setGrabHolder(seat, serial)
}

// setGrabHolder records seat as the current grab holder, swapping the
// destroy listener if one was already installed for a previous holder.
func (p *Popup) setGrabHolder(seat Seat, serial uint32) {
	p.grabHolderKey.Cancel()
	p.grabHolder = seat
	p.currentGrabSerial = serial
	p.grabHolderKey = seat.OnDestroy(func() { p.onGrabHolderDestroyed() })
	p.state = p.state.Set(Grabbed)
	p.log.Debug("grab established", "serial", serial)
}

// onPendingGrabSeatDestroyed handles seat destruction while a grab is
// still pending (not yet mapped): it clears the seat reference and
// listener key but leaves PendingGrab set, so the next map observes "no
// seat to grab with" and dismisses (spec §4.3).
func (p *Popup) onPendingGrabSeatDestroyed() {
	p.pendingGrabSeat = nil
	p.pendingGrabKey = nil
	p.log.Debug("pending grab seat destroyed")
}

// onGrabHolderDestroyed handles destruction of the seat currently holding
// the grab: clears the holder and listener key, then dismisses without
// cascading to parents.
func (p *Popup) onGrabHolderDestroyed() {
	p.grabHolder = nil
	p.grabHolderKey = nil
	p.log.Debug("grab holder seat destroyed")
	p.dismiss(false)
}
