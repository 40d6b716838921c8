// SPDX-License-Identifier: Unlicense OR MIT

package popup

// Destroy implements the popup.destroy request (spec §4.5, §6). A popup
// holding or pending a grab may be destroyed only if it is topmost;
// otherwise ErrNotTopmostPopup is raised and the resource survives. On
// success the popup detaches from its role (which may revert the grab to
// the parent) and releases the protocol object's own reference; the
// backing is freed once both references have gone.
func (p *Popup) Destroy() error {
	if p.state.Any(Grabbed|PendingGrab) && !p.state.Has(Topmost) {
		return ErrNotTopmostPopup
	}
	p.Detach()
	p.release()
	return nil
}
