// SPDX-License-Identifier: Unlicense OR MIT

package popup

import "testing"

// Fakes for the collaborators this package consumes. None of them do
// anything beyond recording calls and returning configured answers — the
// real geometry math, input routing, and substrate wire traffic live
// outside this package and are out of scope for these tests.

type fakePositioner struct {
	geom     Geometry
	reactive bool
	invalid  bool
	retained int
}

func (f *fakePositioner) Calculate(Geometry) Geometry { return f.geom }
func (f *fakePositioner) IsReactive() bool            { return f.reactive }
func (f *fakePositioner) Validate() error {
	if f.invalid {
		return ErrInvalidPositioner
	}
	return nil
}
func (f *fakePositioner) Retain()  { f.retained++ }
func (f *fakePositioner) Release() { f.retained-- }

type cbSlot struct {
	configure func()
	resize    func()
}

type fakeToplevel struct {
	geom        Geometry
	rootX       int
	rootY       int
	retained    int
	reconstrain []cbSlot
}

func (f *fakeToplevel) Kind() RoleKind            { return Toplevel }
func (f *fakeToplevel) CurrentGeometry() Geometry { return f.geom }
func (f *fakeToplevel) RootPosition() (int, int)  { return f.rootX, f.rootY }
func (f *fakeToplevel) OnReconstrain(onConfigure, onResize func()) CancelKey {
	f.reconstrain = append(f.reconstrain, cbSlot{onConfigure, onResize})
	idx := len(f.reconstrain) - 1
	return func() { f.reconstrain[idx] = cbSlot{} }
}
func (f *fakeToplevel) Retain()  { f.retained++ }
func (f *fakeToplevel) Release() { f.retained-- }

func (f *fakeToplevel) fireConfigure() {
	for _, s := range f.reconstrain {
		if s.configure != nil {
			s.configure()
		}
	}
}

func (f *fakeToplevel) fireResize() {
	for _, s := range f.reconstrain {
		if s.resize != nil {
			s.resize()
		}
	}
}

type fakeRole struct {
	hasBuffer  bool
	hasSurface bool
	originX    int
	originY    int
	surface    interface{}
	configures []uint32
}

func newFakeRole() *fakeRole {
	return &fakeRole{hasSurface: true, surface: "surface"}
}

func (f *fakeRole) HasBuffer() bool             { return f.hasBuffer }
func (f *fakeRole) HasSurface() bool            { return f.hasSurface }
func (f *fakeRole) GeometryOrigin() (int, int)  { return f.originX, f.originY }
func (f *fakeRole) Surface() interface{}        { return f.surface }
func (f *fakeRole) SendConfigure(serial uint32) { f.configures = append(f.configures, serial) }

// lastConfigureSerial returns the most recent serial delegated through
// SendConfigure — the xdg_surface.configure serial a real client would
// ack, as opposed to any popup-internal field.
func (f *fakeRole) lastConfigureSerial() uint32 {
	if len(f.configures) == 0 {
		return 0
	}
	return f.configures[len(f.configures)-1]
}

type fakeSubstrate struct {
	overrideRedirect bool
	moves            [][2]int
	mapped           bool
	raises           int
	unmaps           int
	invalidations    int
}

func (f *fakeSubstrate) SetOverrideRedirect(enabled bool) { f.overrideRedirect = enabled }
func (f *fakeSubstrate) Move(x, y int)                    { f.moves = append(f.moves, [2]int{x, y}) }
func (f *fakeSubstrate) MapRaised() {
	f.mapped = true
	f.raises++
}
func (f *fakeSubstrate) Unmap() {
	f.mapped = false
	f.unmaps++
}
func (f *fakeSubstrate) InvalidateCache() { f.invalidations++ }

func (f *fakeSubstrate) lastMove() (int, int) {
	if len(f.moves) == 0 {
		return 0, 0
	}
	m := f.moves[len(f.moves)-1]
	return m[0], m[1]
}

type fakeFrameClock struct{ frozen int }

func (f *fakeFrameClock) Freeze() { f.frozen++ }

type fakeSink struct {
	configures   []Geometry
	done         int
	repositioned []uint32
}

func (f *fakeSink) Configure(x, y, w, h int) {
	f.configures = append(f.configures, Geometry{X: x, Y: y, Width: w, Height: h})
}
func (f *fakeSink) PopupDone()                { f.done++ }
func (f *fakeSink) Repositioned(token uint32) { f.repositioned = append(f.repositioned, token) }

func (f *fakeSink) lastConfigure() Geometry {
	if len(f.configures) == 0 {
		return Geometry{}
	}
	return f.configures[len(f.configures)-1]
}

type grabCall struct {
	surface interface{}
	serial  uint32
}

type fakeSeat struct {
	name       string
	grant      bool
	destroyCbs []func()
	grabs      []grabCall
}

func newFakeSeat(name string, grant bool) *fakeSeat {
	return &fakeSeat{name: name, grant: grant}
}

func (f *fakeSeat) TryExplicitGrab(surface interface{}, serial uint32) bool {
	f.grabs = append(f.grabs, grabCall{surface, serial})
	return f.grant
}

func (f *fakeSeat) OnDestroy(cb func()) CancelKey {
	f.destroyCbs = append(f.destroyCbs, cb)
	idx := len(f.destroyCbs) - 1
	return func() { f.destroyCbs[idx] = nil }
}

func (f *fakeSeat) destroy() {
	cbs := f.destroyCbs
	f.destroyCbs = nil
	for _, cb := range cbs {
		if cb != nil {
			cb()
		}
	}
}

// harness bundles a popup with its fakes for convenient assertions.
type harness struct {
	popup      *Popup
	positioner *fakePositioner
	toplevel   *fakeToplevel
	role       *fakeRole
	substrate  *fakeSubstrate
	frameClock *fakeFrameClock
	sink       *fakeSink
	serials    *SerialSource
}

func newHarness(t *testing.T, geom Geometry) *harness {
	t.Helper()
	h := &harness{
		positioner: &fakePositioner{geom: geom},
		toplevel:   &fakeToplevel{geom: Geometry{X: 0, Y: 0, Width: 800, Height: 600}, rootX: 100, rootY: 200},
		role:       newFakeRole(),
		substrate:  &fakeSubstrate{},
		frameClock: &fakeFrameClock{},
		sink:       &fakeSink{},
		serials:    NewSerialSource(),
	}
	p, err := New(Config{
		Parent:     h.toplevel,
		Positioner: h.positioner,
		Substrate:  h.substrate,
		FrameClock: h.frameClock,
		Sink:       h.sink,
		Serials:    h.serials,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.popup = p
	return h
}

// attachAndMap drives the popup through attach, ack of the outstanding
// configure — acking the serial Attach delegated to the role, not the
// internal field — and a buffer-carrying commit — the common "map it"
// sequence used by most tests.
func (h *harness) attachAndMap() {
	h.popup.Attach(h.role)
	h.popup.AckConfigure(h.role.lastConfigureSerial())
	h.role.hasBuffer = true
	h.popup.Commit(h.role)
}
