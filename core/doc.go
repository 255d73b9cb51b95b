// Package core owns the root bubbletea model: message routing, the key and
// command registries, session state and the select control state machine.
//
// core never imports tabs or screens. They plug in through the Tab and
// Screen interfaces, and main wires them together.
package core
