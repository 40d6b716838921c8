// SPDX-License-Identifier: Unlicense OR MIT

package popup

import "testing"

// All three cancellation key slots are nil once the backing is freed
// (spec §8: "on destroy, all three cancellation key slots are null").
func TestCancellationKeysClearedOnFree(t *testing.T) {
	h := newHarness(t, Geometry{X: 0, Y: 0, Width: 10, Height: 10})
	h.attachAndMap()
	seat := newFakeSeat("seat0", true)
	h.popup.setGrabHolder(seat, 1)
	// A grabbed popup may only be destroyed while topmost; Grab would
	// have set this, setGrabHolder does not.
	h.popup.markTopmost()

	if err := h.popup.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if h.popup.reconstrainKey != nil || h.popup.pendingGrabKey != nil || h.popup.grabHolderKey != nil {
		t.Fatal("expected every cancellation key nil after the backing frees")
	}
}

// Grabbed implies a non-nil grab holder, for every path that sets it.
func TestGrabbedImpliesHolder(t *testing.T) {
	h := newHarness(t, Geometry{X: 0, Y: 0, Width: 10, Height: 10})
	h.popup.Attach(h.role)
	seat := newFakeSeat("seat0", true)
	h.popup.Grab(seat, 1)
	h.popup.AckConfigure(h.role.lastConfigureSerial())
	h.role.hasBuffer = true
	h.popup.Commit(h.role)

	if h.popup.State().Has(Grabbed) && h.popup.grabHolder == nil {
		t.Fatal("Grabbed set but grab_holder is nil")
	}
}

// Reference-count balance: creation + attach increments are exactly
// matched by destroy + detach decrements across a nested popup chain.
func TestRefcountBalanceNested(t *testing.T) {
	h := newHarness(t, Geometry{X: 0, Y: 0, Width: 10, Height: 10})
	a := h.popup
	a.Attach(h.role)

	childPositioner := &fakePositioner{geom: Geometry{X: 1, Y: 1, Width: 5, Height: 5}}
	b, err := New(Config{
		Parent:     a,
		Positioner: childPositioner,
		Substrate:  &fakeSubstrate{},
		FrameClock: &fakeFrameClock{},
		Sink:       &fakeSink{},
		Serials:    h.serials,
	})
	if err != nil {
		t.Fatalf("New(B): %v", err)
	}
	if a.refcount != 3 { // 1 (own protocol obj) + 1 (attach) + 1 (B's Retain on its parent)
		t.Fatalf("A refcount after B's creation = %d, want 3", a.refcount)
	}
	roleB := newFakeRole()
	b.Attach(roleB)

	if err := b.Destroy(); err != nil {
		t.Fatalf("Destroy(B): %v", err)
	}
	if a.refcount != 2 {
		t.Fatalf("A refcount after B destroyed = %d, want 2", a.refcount)
	}
	if err := a.Destroy(); err != nil {
		t.Fatalf("Destroy(A): %v", err)
	}
	if a.refcount != 0 {
		t.Fatalf("A refcount after its own destroy = %d, want 0", a.refcount)
	}
}

// Destroying a popup that is grabbed and topmost succeeds, reverting the
// grab's topmost status to the parent.
func TestDestroyTopmostGrabbedPopupRevertsToParent(t *testing.T) {
	h := newHarness(t, Geometry{X: 0, Y: 0, Width: 10, Height: 10})
	a := h.popup
	a.Attach(h.role)
	seat := newFakeSeat("seat0", true)
	a.Grab(seat, 1)
	a.AckConfigure(h.role.lastConfigureSerial())
	h.role.hasBuffer = true
	a.Commit(h.role)

	childPositioner := &fakePositioner{geom: Geometry{X: 1, Y: 1, Width: 5, Height: 5}}
	b, err := New(Config{
		Parent:     a,
		Positioner: childPositioner,
		Substrate:  &fakeSubstrate{},
		FrameClock: &fakeFrameClock{},
		Sink:       &fakeSink{},
		Serials:    h.serials,
	})
	if err != nil {
		t.Fatalf("New(B): %v", err)
	}
	roleB := newFakeRole()
	b.Attach(roleB)
	b.Grab(seat, 2)
	b.AckConfigure(roleB.lastConfigureSerial())
	roleB.hasBuffer = true
	b.Commit(roleB)

	if err := b.Destroy(); err != nil {
		t.Fatalf("Destroy(B): %v", err)
	}
	if !a.State().Has(Topmost) {
		t.Fatal("A must regain Topmost once B (the grabbed child) is destroyed")
	}
	if !a.State().Has(Grabbed) {
		t.Fatal("A must still hold a grab once B's destruction reverts it to A")
	}
}
