// Package cli is the interactive terminal front end of the rental tracker
// client.
//
// Each command maps to a user action on the page: navigation commands click a
// nav button, form commands prompt for every field of the form and submit it.
// After each command the visible part of the page is printed.
//
// Start it with Shell.Run, which blocks until the user exits or input ends.
package cli
