// SPDX-License-Identifier: Unlicense OR MIT

package popup

// reposition recomputes geometry from the positioner against the current
// parent geometry and issues a new configure. Invoked on creation, on
// reactive reconstraint, and from the Reposition RPC (spec §4.2).
func (p *Popup) reposition() {
	parentGeom := p.parent.CurrentGeometry()
	g := p.positioner.Calculate(parentGeom)

	p.pendingX, p.pendingY = g.X, g.Y

	serial := p.serials.Next()
	p.confSerial = serial
	p.confReply = true

	if g.HasSize() {
		p.positionSerial = serial
		p.state = p.state.Set(AckPosition)
		p.sink.Configure(g.X, g.Y, g.Width, g.Height)
	}

	if p.role != nil {
		p.role.SendConfigure(serial)
	}
	p.frameClock.Freeze()

	p.log.Debug("reposition",
		"x", g.X, "y", g.Y, "width", g.Width, "height", g.Height,
		"serial", serial, "has_size", g.HasSize())
}

// Reposition replaces the positioner and performs an internal reposition,
// implementing the popup.reposition request (spec §4.2, §6).
func (p *Popup) Reposition(positioner Positioner, token uint32) error {
	if p.role == nil {
		return nil
	}
	if err := positioner.Validate(); err != nil {
		return ErrInvalidPositioner
	}

	positioner.Retain()
	p.positioner.Release()
	p.positioner = positioner

	if p.sink != nil {
		p.sink.Repositioned(token)
	}
	p.log.Debug("reposition requested", "token", token)
	p.reposition()
	return nil
}

// applyPendingMove performs the window-move arithmetic and issues the
// substrate move. It is step 1 of commit (spec §4.1: "If PendingPosition
// is set, reposition the window on the substrate") and is reused,
// unconditionally, as part of the map sequence (spec §4.2 step 3).
func (p *Popup) applyPendingMove() {
	if p.role == nil || !p.role.HasSurface() {
		return
	}
	rootX, rootY := p.parent.RootPosition()
	parentGeom := p.parent.CurrentGeometry()
	roleOriginX, roleOriginY := p.role.GeometryOrigin()

	subX := rootX + parentGeom.X - roleOriginX + p.x
	subY := rootY + parentGeom.Y - roleOriginY + p.y

	p.substrateX, p.substrateY = subX, subY
	p.substrate.Move(subX, subY)
}

// doMap performs the map sequence (spec §4.2). It runs on every post-ack
// buffer-carrying commit that finds the popup unmapped, so a popup
// unmapped by a bufferless commit maps again through it; commits that
// reposition an already-mapped popup go through applyPendingMove alone
// (spec §4.1 commit step 1), not through the cache-invalidating,
// pending-grab-establishing map sequence.
func (p *Popup) doMap() {
	p.substrate.InvalidateCache()
	p.state = p.state.Set(Mapped)
	p.applyPendingMove()
	p.substrate.MapRaised()
	p.log.Debug("popup mapped", "x", p.x, "y", p.y)

	if p.state.Has(PendingGrab) {
		p.establishPendingGrab()
	}
}

// unmap unmaps the window and clears Mapped. Called from commit when a
// buffer-carrying surface is replaced by a bufferless commit, and from
// dismiss/detach.
func (p *Popup) unmap() {
	p.substrate.Unmap()
	p.state = p.state.Clear(Mapped)
	p.log.Debug("popup unmapped")
}

func (p *Popup) onParentConfigure() {
	if p.positioner.IsReactive() {
		p.log.Debug("reconstrain on parent configure")
		p.reposition()
	}
}

func (p *Popup) onParentResize() {
	if p.positioner.IsReactive() {
		p.log.Debug("reconstrain on parent resize")
		p.reposition()
	}
}
