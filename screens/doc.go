// Package screens holds overlays pushed on top of the active tab, currently
// the command palette.
package screens
