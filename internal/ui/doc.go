// Package ui provides terminal output components for the netscen-cfg CLI.
//
// The non-interactive commands (show, validate, export, reset, bands) use
// these components to print styled output and exit. They are rendered with
// Lipgloss and sized from the terminal width reported by x/term; the
// interactive wizard lives in package tui instead.
//
// # Components
//
//   - Header: command banner with the operation name and its parameters
//   - Result: success, failure or warning box, optionally with problems
//   - Table: bordered table, used for the band catalogue
//   - ConfirmDestructive: yes/no prompt guarding the reset command
//
// Example:
//
//	fmt.Println(ui.NewHeader("Validate scenario", "netscen-cfg validate",
//	    ui.Param{Key: "Storage", Value: "file"},
//	).Render())
//
//	if len(problems) > 0 {
//	    fmt.Println(ui.RenderFailure("Scenario is invalid", nil, problems))
//	}
//
// # Logging Integration
//
// Logging is controlled by the NETSCEN_LOG_LEVEL environment variable or the
// config file. Unless a level is set, zap logging stays silent so the curated
// output is displayed cleanly.
package ui
