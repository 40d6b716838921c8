// SPDX-License-Identifier: Unlicense OR MIT

package popup

import (
	"log/slog"

	"github.com/google/uuid"
)

// newLogger returns a logger correlated to id: every record carries the
// key/value attributes component=popup and popup_id=<id>. The component
// is an attribute, not a bracketed prefix on the message.
func newLogger(base *slog.Logger, id uuid.UUID) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With("component", "popup", "popup_id", id.String())
}
