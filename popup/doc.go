// SPDX-License-Identifier: Unlicense OR MIT

/*
Package popup implements the xdg_popup role state machine used by a
Wayland compositor that mediates surfaces onto an X11 substrate.

The package owns the popup backing object, the popup stack (topmost
tracking, grab ownership, dismissal cascade), the configure/ack-configure
round trip, and parent reconstraint. It deliberately knows nothing about
wire-level Wayland dispatch, X11 property protocols, buffer/damage
tracking, or positioner geometry math: those are consumed through the
small interfaces in this package (Positioner, Seat, ParentRole, Role,
Substrate, FrameClock, ProtocolSink) and implemented by the rest of the
compositor.
*/
package popup
