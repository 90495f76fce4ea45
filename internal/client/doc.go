// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows and the service layer into a single process
// lifecycle: login flow, session establishment, main program, and the logout
// loop back to the login flow.
package client
