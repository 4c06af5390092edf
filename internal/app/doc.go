// Package app is the application controller: the top-level navigation state,
// the single update step every event goes through, and the renderer that
// composes the visible screen.
//
// The controller is a reducer and renderer pair:
//
//	state, cmd := app.New(deps)
//	state, cmd = app.Update(state, event)
//	tree := app.Render(state)
//
// Update never blocks and never performs I/O. Work that must wait on a device
// or a file is returned as a Command; the host runs it off the control
// goroutine and feeds the one Event it yields back into Update. Hosts are
// internal/tui (Bubble Tea) and internal/server (WebSocket, via
// internal/app/runtime).
//
// Every load is tagged with a generation number. A refresh bumps the
// generation, so a slow load started before it is recognised and dropped
// when it finally completes.
package app
