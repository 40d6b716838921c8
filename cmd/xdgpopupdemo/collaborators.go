// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log/slog"

	"github.com/wlcore/xdgpopup/popup"
)

// fixedPositioner is a positioner with a precomputed answer: enough to
// drive the demo scenarios without a real anchor-rect/constraint solver.
type fixedPositioner struct {
	geom     popup.Geometry
	reactive bool
}

func (p *fixedPositioner) Calculate(popup.Geometry) popup.Geometry { return p.geom }
func (p *fixedPositioner) IsReactive() bool                        { return p.reactive }
func (p *fixedPositioner) Validate() error {
	if !p.geom.HasSize() {
		return popup.ErrInvalidPositioner
	}
	return nil
}
func (p *fixedPositioner) Retain()  {}
func (p *fixedPositioner) Release() {}

// demoToplevel is a stand-in for a real toplevel window acting as the root
// of a popup chain.
type demoToplevel struct {
	geom         popup.Geometry
	rootX, rootY int
	reconstrain  []struct{ onConfigure, onResize func() }
}

func (t *demoToplevel) Kind() popup.RoleKind            { return popup.Toplevel }
func (t *demoToplevel) CurrentGeometry() popup.Geometry { return t.geom }
func (t *demoToplevel) RootPosition() (int, int)        { return t.rootX, t.rootY }
func (t *demoToplevel) OnReconstrain(onConfigure, onResize func()) popup.CancelKey {
	idx := len(t.reconstrain)
	t.reconstrain = append(t.reconstrain, struct{ onConfigure, onResize func() }{onConfigure, onResize})
	return func() { t.reconstrain[idx] = struct{ onConfigure, onResize func() }{} }
}
func (t *demoToplevel) Retain()  {}
func (t *demoToplevel) Release() {}

func (t *demoToplevel) resize(g popup.Geometry) {
	t.geom = g
	for _, s := range t.reconstrain {
		if s.onResize != nil {
			s.onResize()
		}
	}
}

// demoRole is a surface role standing in for a real xdg_surface-backed
// wl_surface: it tracks whether a buffer is currently attached and the
// serial of the last configure delegated to it.
type demoRole struct {
	hasBuffer  bool
	surface    string
	lastSerial uint32
}

func (r *demoRole) HasBuffer() bool            { return r.hasBuffer }
func (r *demoRole) HasSurface() bool           { return true }
func (r *demoRole) GeometryOrigin() (int, int) { return 0, 0 }
func (r *demoRole) Surface() interface{}       { return r.surface }
func (r *demoRole) SendConfigure(serial uint32) {
	r.lastSerial = serial
	slog.Debug("role configure sent", "surface", r.surface, "serial", serial)
}

// demoSubstrate logs every window-manager-level action instead of driving
// a real X11/Wayland substrate.
type demoSubstrate struct {
	log *slog.Logger
}

func (s *demoSubstrate) SetOverrideRedirect(enabled bool) {
	s.log.Debug("set_override_redirect", "enabled", enabled)
}
func (s *demoSubstrate) Move(x, y int) { s.log.Info("move", "x", x, "y", y) }
func (s *demoSubstrate) MapRaised()    { s.log.Info("map_raised") }
func (s *demoSubstrate) Unmap()        { s.log.Info("unmap") }
func (s *demoSubstrate) InvalidateCache() {
	s.log.Debug("invalidate_cache")
}

type demoFrameClock struct {
	log *slog.Logger
}

func (f *demoFrameClock) Freeze() { f.log.Debug("frame_clock frozen") }

// demoSink is the protocol sink: in a real compositor this would marshal
// xdg_popup.configure/popup_done/repositioned wire events. Here it logs
// them, which is the whole point of a demo harness.
type demoSink struct {
	log *slog.Logger
}

func (s *demoSink) Configure(x, y, w, h int) {
	s.log.Info("xdg_popup.configure", "x", x, "y", y, "width", w, "height", h)
}
func (s *demoSink) PopupDone() { s.log.Info("xdg_popup.popup_done") }
func (s *demoSink) Repositioned(token uint32) {
	s.log.Info("xdg_popup.repositioned", "token", token)
}

// demoSeat is a seat that always grants explicit grabs unless told not to,
// and exposes a destroy method the scenarios call directly to simulate a
// client or input device disappearing.
type demoSeat struct {
	log        *slog.Logger
	name       string
	grant      bool
	destroyCbs []func()
}

func (s *demoSeat) TryExplicitGrab(surface interface{}, serial uint32) bool {
	s.log.Info("try_explicit_grab", "seat", s.name, "surface", surface, "serial", serial, "granted", s.grant)
	return s.grant
}

func (s *demoSeat) OnDestroy(cb func()) popup.CancelKey {
	idx := len(s.destroyCbs)
	s.destroyCbs = append(s.destroyCbs, cb)
	return func() { s.destroyCbs[idx] = nil }
}

func (s *demoSeat) destroy() {
	s.log.Info("seat destroyed", "seat", s.name)
	cbs := s.destroyCbs
	s.destroyCbs = nil
	for _, cb := range cbs {
		if cb != nil {
			cb()
		}
	}
}
