// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/wlcore/xdgpopup/popup"
)

// Each scenario function walks through one of the core's end-to-end
// scenarios, logging every transition so the demo reads as a trace rather
// than just a pass/fail.

func newDemoPopup(log *slog.Logger, parent popup.ParentRole, serials *popup.SerialSource, geom popup.Geometry, reactive bool) (*popup.Popup, *demoRole, error) {
	p, err := popup.New(popup.Config{
		Parent:     parent,
		Positioner: &fixedPositioner{geom: geom, reactive: reactive},
		Substrate:  &demoSubstrate{log: log},
		FrameClock: &demoFrameClock{log: log},
		Sink:       &demoSink{log: log},
		Serials:    serials,
		Logger:     log,
	})
	if err != nil {
		return nil, nil, err
	}
	return p, &demoRole{surface: "popup-surface"}, nil
}

// ackAndMap attaches role (unconditionally), acks the outstanding
// configure, attaches a buffer, and commits: the common "map it" sequence.
func ackAndMap(p *popup.Popup, role *demoRole) {
	p.Attach(role)
	p.AckConfigure(role.lastSerial)
	role.hasBuffer = true
	p.Commit(role)
}

// scenarioCreateMapDestroy: create, ack, commit with a buffer maps the
// popup; destroying an ungrabbed popup succeeds without emitting
// popup_done.
func scenarioCreateMapDestroy(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}, rootX: 100, rootY: 200}
	serials := popup.NewSerialSource()

	p, role, err := newDemoPopup(log, top, serials, popup.Geometry{X: 10, Y: 20, Width: 100, Height: 50}, false)
	if err != nil {
		return err
	}
	ackAndMap(p, role)

	if !p.IsWindowMapped() {
		return fmt.Errorf("expected popup mapped")
	}
	return p.Destroy()
}

// scenarioGrabBeforeMap: a grab requested before the first commit buffers
// as a pending grab and is established once the popup maps.
func scenarioGrabBeforeMap(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}}
	serials := popup.NewSerialSource()
	p, role, err := newDemoPopup(log, top, serials, popup.Geometry{Width: 50, Height: 50}, false)
	if err != nil {
		return err
	}
	p.Attach(role)

	seat := &demoSeat{log: log, name: "seat0", grant: true}
	if err := p.Grab(seat, 42); err != nil {
		return err
	}
	if !p.State().Has(popup.PendingGrab) {
		return fmt.Errorf("expected PendingGrab set")
	}

	p.AckConfigure(role.lastSerial)
	role.hasBuffer = true
	p.Commit(role)

	if !p.State().Has(popup.Grabbed) {
		return fmt.Errorf("expected Grabbed after map")
	}
	return p.Destroy()
}

// scenarioGrabOnMapped: grabbing an already-mapped popup raises
// invalid_grab.
func scenarioGrabOnMapped(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}}
	serials := popup.NewSerialSource()
	p, role, err := newDemoPopup(log, top, serials, popup.Geometry{Width: 50, Height: 50}, false)
	if err != nil {
		return err
	}
	ackAndMap(p, role)

	seat := &demoSeat{log: log, name: "seat0", grant: true}
	if err := p.Grab(seat, 7); err != popup.ErrInvalidGrab {
		return fmt.Errorf("Grab on mapped popup = %v, want ErrInvalidGrab", err)
	}
	log.Info("invalid_grab raised as expected")
	return p.Destroy()
}

// scenarioDestroyNonTopmost: destroying a non-topmost grabbed popup raises
// not_the_topmost_popup.
func scenarioDestroyNonTopmost(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}}
	serials := popup.NewSerialSource()
	seat := &demoSeat{log: log, name: "seat0", grant: true}

	a, roleA, err := newDemoPopup(log, top, serials, popup.Geometry{Width: 50, Height: 50}, false)
	if err != nil {
		return err
	}
	a.Attach(roleA)
	a.Grab(seat, 1)
	a.AckConfigure(roleA.lastSerial)
	roleA.hasBuffer = true
	a.Commit(roleA)

	b, roleB, err := newDemoPopup(log, a, serials, popup.Geometry{Width: 20, Height: 20}, false)
	if err != nil {
		return err
	}
	b.Attach(roleB)
	b.Grab(seat, 2)
	b.AckConfigure(roleB.lastSerial)
	roleB.hasBuffer = true
	b.Commit(roleB)

	if err := a.Destroy(); err != popup.ErrNotTopmostPopup {
		return fmt.Errorf("Destroy(A) = %v, want ErrNotTopmostPopup", err)
	}
	log.Info("not_the_topmost_popup raised as expected")

	if err := b.Destroy(); err != nil {
		return err
	}
	return a.Destroy()
}

// scenarioReactiveReconstrain: a reactive positioner recomputes on parent
// resize while mapped.
func scenarioReactiveReconstrain(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}}
	serials := popup.NewSerialSource()
	p, role, err := newDemoPopup(log, top, serials, popup.Geometry{X: 10, Y: 20, Width: 100, Height: 50}, true)
	if err != nil {
		return err
	}
	ackAndMap(p, role)

	top.resize(popup.Geometry{Width: 400, Height: 300})
	log.Info("parent resized, reconstrain fired")

	p.AckConfigure(role.lastSerial)
	role.hasBuffer = true
	p.Commit(role)
	return p.Destroy()
}

// scenarioSeatDestroyedDuringPendingGrab: the seat holding a pending grab
// disappears before the popup maps; the popup dismisses unmapped.
func scenarioSeatDestroyedDuringPendingGrab(log *slog.Logger) error {
	top := &demoToplevel{geom: popup.Geometry{Width: 800, Height: 600}}
	serials := popup.NewSerialSource()
	p, role, err := newDemoPopup(log, top, serials, popup.Geometry{Width: 50, Height: 50}, false)
	if err != nil {
		return err
	}
	p.Attach(role)

	seat := &demoSeat{log: log, name: "seat0", grant: true}
	if err := p.Grab(seat, 9); err != nil {
		return err
	}
	seat.destroy()

	p.AckConfigure(role.lastSerial)
	role.hasBuffer = true
	p.Commit(role)

	if p.IsWindowMapped() {
		return fmt.Errorf("expected dismissal to leave the popup unmapped")
	}
	log.Info("popup dismissed on missing grab seat, as expected")
	return nil
}
