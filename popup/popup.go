// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"log/slog"

	"github.com/google/uuid"
)

// Popup is the stateful backing object described by spec §3: refcount,
// state bits, pending/acknowledged geometry, configure serials, and grab
// bookkeeping. It outlives neither collaborator on its own — it is freed
// once both the protocol object and the role attachment have released
// their reference (see release).
type Popup struct {
	id uuid.UUID

	refcount int
	state    State

	role       Role
	parent     ParentRole
	positioner Positioner
	substrate  Substrate
	frameClock FrameClock
	sink       ProtocolSink
	serials    *SerialSource
	log        *slog.Logger

	// pending/acknowledged geometry, spec §3.
	pendingX, pendingY int
	x, y               int
	width, height      int

	// once mapped, the popup's own position in substrate-root
	// coordinates; exposed through ParentRole.RootPosition so nested
	// popups can anchor against it.
	substrateX, substrateY int

	confSerial     uint32
	positionSerial uint32
	confReply      bool

	grabHolder        Seat
	currentGrabSerial uint32
	grabHolderKey     CancelKey

	pendingGrabSeat   Seat
	pendingGrabSerial uint32
	pendingGrabKey    CancelKey

	reconstrainKey CancelKey

	// childConfigureCbs and childResizeCbs back this popup's own
	// ParentRole.OnReconstrain implementation (parent_impl.go), fired
	// when this popup is itself used as another popup's parent.
	childConfigureCbs []func()
	childResizeCbs    []func()
}

// Config bundles the collaborators a new popup needs. All fields are
// required except Logger, which defaults to slog.Default().
type Config struct {
	Parent     ParentRole
	Positioner Positioner
	Substrate  Substrate
	FrameClock FrameClock
	Sink       ProtocolSink
	Serials    *SerialSource
	Logger     *slog.Logger
}

// New creates a popup backing object: retains the parent and positioner,
// subscribes to parent reconstraint, and performs the initial reposition
// and configure. The protocol object's own strong reference accounts for
// the first refcount increment (spec §3: "Incremented by: ... creation of
// the protocol object").
//
// Validate is called on the positioner before anything else; a malformed
// positioner makes New return ErrInvalidPositioner and nothing is
// retained or subscribed.
func New(cfg Config) (*Popup, error) {
	if err := cfg.Positioner.Validate(); err != nil {
		return nil, ErrInvalidPositioner
	}

	id := uuid.New()
	p := &Popup{
		id:         id,
		refcount:   1,
		parent:     cfg.Parent,
		positioner: cfg.Positioner,
		substrate:  cfg.Substrate,
		frameClock: cfg.FrameClock,
		sink:       cfg.Sink,
		serials:    cfg.Serials,
		log:        newLogger(cfg.Logger, id),
	}

	p.parent.Retain()
	p.positioner.Retain()
	p.reconstrainKey = p.parent.OnReconstrain(p.onParentConfigure, p.onParentResize)

	p.log.Debug("popup created", "parent_kind", p.parent.Kind().String())
	p.reposition()

	return p, nil
}

// Attach binds the popup to its owning surface role. refcount++ (spec
// §4.1: attach "refcount++, request substrate-level treatment appropriate
// to a popup").
//
// New performs the initial reposition before any role is attached, so
// that first configure's serial has nowhere to go yet (xdg_surface.configure
// is "delegated through the role", spec §6). Attach re-delivers it to the
// newly-bound role if a configure is still outstanding, so the client
// always learns the serial it must ack to map the popup.
func (p *Popup) Attach(role Role) {
	p.role = role
	p.refcount++
	p.substrate.SetOverrideRedirect(true)
	if p.confReply {
		p.role.SendConfigure(p.confSerial)
	}
	p.log.Debug("popup attached", "refcount", p.refcount)
}

// Detach tears the popup away from its role. If the popup still holds or
// is pending a grab, the grab is reverted to the parent first (spec
// §4.3). The window is unmapped, the override-redirect treatment is
// undone, role is cleared, and refcount is decremented.
func (p *Popup) Detach() {
	if p.role == nil {
		return
	}
	if p.state.Any(Grabbed | PendingGrab) {
		p.revertToParent()
	}
	if p.state.Has(Mapped) {
		p.unmap()
	}
	p.substrate.SetOverrideRedirect(false)
	p.role = nil
	p.log.Debug("popup detached")
	p.release()
}

// Commit is the integration point with the surface's double-buffered
// state (spec §4.1).
func (p *Popup) Commit(surface Role) {
	if p.role == nil {
		return
	}
	if p.state.Has(PendingPosition) {
		p.applyPendingMove()
		p.state = p.state.Clear(PendingPosition)
	}
	if !surface.HasBuffer() {
		if p.state.Has(Mapped) {
			p.unmap()
		}
		return
	}
	if !p.confReply && !p.state.Has(Mapped) {
		p.doMap()
	}
}

// AckConfigure matches serial against the outstanding configure and, if
// AckPosition is set, against the outstanding position ack too. Unmatched
// serials are ignored (spec §4.1).
func (p *Popup) AckConfigure(serial uint32) {
	if p.role == nil {
		return
	}
	if serial == p.confSerial {
		p.confSerial = 0
		p.confReply = false
	}
	if p.state.Has(AckPosition) && serial == p.positionSerial {
		p.x, p.y = p.pendingX, p.pendingY
		p.state = p.state.Clear(AckPosition).Set(PendingPosition)
		p.fireChildCallbacks(p.childConfigureCbs)
	}
	p.log.Debug("ack_configure", "serial", serial, "state", p.state.String())
}

// fireChildCallbacks invokes every still-installed callback in cbs. Slots
// withdrawn via the CancelKey returned by OnReconstrain are left nil by
// parent_impl.go's cancellation closures.
func (p *Popup) fireChildCallbacks(cbs []func()) {
	for _, cb := range cbs {
		if cb != nil {
			cb()
		}
	}
}

// NoteSize records the window size most recently observed from the
// substrate. It emits no protocol events for this popup; a changed size
// fires the resize callbacks of child popups subscribed through
// OnReconstrain, which may reposition them.
func (p *Popup) NoteSize(w, h int) {
	changed := w != p.width || h != p.height
	p.width, p.height = w, h
	if changed {
		p.fireChildCallbacks(p.childResizeCbs)
	}
}

// HandleGeometryChange re-runs the window-move computation after this
// popup's own role geometry changed on the substrate.
func (p *Popup) HandleGeometryChange() {
	if p.role == nil || !p.state.Has(Mapped) {
		return
	}
	p.applyPendingMove()
}

// IsWindowMapped reports the Mapped bit.
func (p *Popup) IsWindowMapped() bool {
	return p.state.Has(Mapped)
}

// State returns the current flag set, primarily for tests and diagnostics.
func (p *Popup) State() State { return p.state }

// release decrements refcount and frees the backing once both the
// protocol object and the role attachment have released (spec §3
// lifecycle, §9 "refcount with external observers").
func (p *Popup) release() {
	p.refcount--
	if p.refcount < 0 {
		panic(invariantViolation("refcount went negative on popup %s", p.id))
	}
	if p.refcount == 0 {
		p.free()
	}
}

// free withdraws every outstanding subscription. Spec §3: "cancellation
// keys on seats/parents are withdrawn" and §8: "on destroy, all three
// cancellation key slots are null."
func (p *Popup) free() {
	p.reconstrainKey.Cancel()
	p.reconstrainKey = nil
	p.pendingGrabKey.Cancel()
	p.pendingGrabKey = nil
	p.grabHolderKey.Cancel()
	p.grabHolderKey = nil

	p.positioner.Release()
	p.parent.Release()
	p.log.Debug("popup freed")
}
