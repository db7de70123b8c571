// Package tui implements the terminal user interface for the network scenario wizard.
//
// The wizard is a single full-screen Bubble Tea program. The model wraps a
// wizard.Session and renders the section at the session cursor as a form of
// fields; every edit goes through the section controllers, so the rules about
// derived channel numbers, range caps and profile targets live in package
// wizard and not here.
//
// # Layout
//
// Every screen uses RenderApplicationContainer: a header with the app name and
// version, the step indicator, the form of the current section, the list of
// problems that blocked the last Next, and a help footer built with
// bubbles/help.
//
// # Usage Example
//
//	kv, err := storage.Open(storage.BackendFile, path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kv.Close()
//
//	if err := tui.Run(kv, "networkScenarioData"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Keys
//
// Arrow keys (or hjkl) move between fields and cycle options, enter edits a
// text field, n validates and saves the section before moving on, b saves and
// goes back, 1-6 jump straight to a step without validation, a adds a cell,
// range or profile, and ctrl+r resets the scenario after confirmation.
package tui
