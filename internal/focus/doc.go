// Package focus implements spatial focus navigation for keyboard and remote
// control driven interfaces.
//
// A Scope owns a registry of focusable elements and the id of the element that
// currently has focus. Directional input is resolved against live element
// geometry: the Selector scores every visible candidate by its distance along
// the requested axis plus a weighted perpendicular penalty, which keeps
// movement inside visual lanes. Screens layer explicit data on top of the
// geometry:
//
//   - overrides ("from id X going right always lands on Y"),
//   - remembering groups (entering a tab strip from outside lands on the
//     group's active member rather than the geometrically closest one).
//
// Scopes are stacked by a Navigator. Only the top scope receives input, so a
// modal pushed over a screen suspends the screen's navigation until it is
// popped. Back is the one action that bubbles: when the top scope has no back
// handler the next scope down is asked.
//
// Geometry is read through the Geometry port on demand and never cached, so
// the engine can be exercised in tests with StaticGeometry or GridGeometry.
// None of the operations in this package return errors; stale ids, empty
// registries and saturated edges are all silent no-ops.
package focus
