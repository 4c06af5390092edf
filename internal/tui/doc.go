// Package tui hosts the debloater controller in a full-screen terminal UI.
//
// The controller in package app owns all state transitions and produces a
// display tree. This package only translates between Bubble Tea and that
// controller:
//   - key presses and mouse wheel events become app events
//   - app commands become tea.Cmd functions whose result is the next event
//   - the display tree is drawn with lipgloss inside a common frame
//
// # Usage Example
//
//	deps := app.Deps{Device: client, Catalog: loader}
//	if err := tui.Run(ctx, deps); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Bindings
//
// Global: r refresh, 1/2/3 switch screens, q quit. The list screen adds
// cursor movement, selection, tier and list filters, copy, and "/" to edit
// the search query. The settings screen toggles each option with a single key.
package tui
