// Package ui contains the Bubble Tea program for the terminal media center.
// The Model type focuses on message orchestration, while dedicated files own
// the screens, key routing, rendering and persisted actions.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, backend updates, action results).
//   - Key presses go to a focus.Navigator first. Keys it does not claim belong
//     to the focused text field, if any (internal/ui/input.go).
//
// Focus ownership:
//   - Every screen has its own focus.Scope holding the sidebar and the
//     screen's content. Switching screens swaps the scope on the navigator;
//     the scope below it, the root, handles Back when nothing else does.
//   - Modals push a scope of their own and pop it on close, which suspends
//     the screen underneath.
//   - Screens lay their elements out in cells (layout.go). The same boxes are
//     painted by View and reported to the focus engine as geometry, so what is
//     navigated is exactly what is drawn.
//
// Backend interactions:
//   - A backend.Watcher streams catalogue loads; Update waits for those events
//     and hands them to applyBackendEvent, which refreshes the catalogue store
//     and re-lays every screen out.
//   - Store writes run as tea.Cmd values through the command bus and report
//     back with actionResultMsg, after which persisted state is reloaded.
package ui
