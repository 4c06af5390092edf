// Package ui renders styled, run-once output for the debloater subcommands.
//
// Unlike the interactive terminal host, these components print and return:
//
//   - Header: command banner with ordered parameters
//   - Result: success, warning or failure box
//   - Table: aligned columns for device and package listings
//   - Confirm: a warning box with a yes/no prompt
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Connected Devices", "debloater device",
//	    ui.Field{Key: "adb", Value: cfg.ADB.Path})
//	p.PrintTable([]string{"SERIAL", "STATE"}, rows)
//
// # Logging Integration
//
// Logging stays silent unless DEBLOATER_LOG_LEVEL or --log-level is set, so
// this output is not interleaved with log lines.
package ui
