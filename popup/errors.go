// SPDX-License-Identifier: Unlicense OR MIT

package popup

import "github.com/pkg/errors"

// Protocol errors. These are the only ones a popup operation raises to
// the client; everything else the core does is a no-op guard or a
// best-effort dismissal (spec §7).
var (
	// ErrInvalidGrab is raised when popup.grab is requested on a popup
	// that is already mapped.
	ErrInvalidGrab = errors.New("invalid_grab: popup is already mapped")

	// ErrNotTopmostPopup is raised when popup.destroy is requested on a
	// popup that is grabbed or pending-grab but not topmost.
	ErrNotTopmostPopup = errors.New("not_the_topmost_popup: popup is not the topmost grabbed popup")

	// ErrInvalidPositioner is raised when a positioner fails its
	// completeness check, on creation or on reposition.
	ErrInvalidPositioner = errors.New("invalid_positioner: positioner object is not complete")
)

// invariantViolation wraps a broken internal invariant (double-free,
// withdrawn-twice cancellation key, ...) with a stack trace. It is never
// surfaced to a client; it indicates a bug in this package or a
// collaborator.
func invariantViolation(format string, args ...interface{}) error {
	return errors.Errorf("popup: invariant violated: "+format, args...)
}
